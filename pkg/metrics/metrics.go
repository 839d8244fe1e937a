package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	SessionsStarted    *prometheus.CounterVec
	AnswersSubmitted   *prometheus.CounterVec
	FollowUpsInserted  *prometheus.CounterVec
	ArtifactsSaved     *prometheus.CounterVec
	CompletionRequests *prometheus.CounterVec
	CompletionDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SessionsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "founderkit_questionnaire_sessions_started_total",
				Help: "Questionnaire sessions started",
			},
			[]string{"artifact_type"},
		),
		AnswersSubmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "founderkit_questionnaire_answers_total",
				Help: "Answers submitted, by outcome",
			},
			[]string{"artifact_type", "outcome"},
		),
		FollowUpsInserted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "founderkit_questionnaire_followups_inserted_total",
				Help: "Follow-up questions spliced into a session",
			},
			[]string{"question_id"},
		),
		ArtifactsSaved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "founderkit_artifacts_saved_total",
				Help: "Artifacts written to storage",
			},
			[]string{"artifact_type", "status"},
		),
		CompletionRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "founderkit_completion_requests_total",
				Help: "Calls to the chat completion provider",
			},
			[]string{"provider", "outcome"},
		),
		CompletionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "founderkit_completion_duration_seconds",
				Help:    "Latency of chat completion calls",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
			},
			[]string{"provider"},
		),
	}
	reg.MustRegister(
		m.SessionsStarted,
		m.AnswersSubmitted,
		m.FollowUpsInserted,
		m.ArtifactsSaved,
		m.CompletionRequests,
		m.CompletionDuration,
	)
	return m
}

// NewNop returns metrics registered on a throwaway registry, for tests.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
