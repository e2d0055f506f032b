package models

// HorizonRefreshPayload is the asynq task payload asking the worker to
// recompute an expert's cached available-date sets.
type HorizonRefreshPayload struct {
	ExpertID string `json:"expertId"`
}
