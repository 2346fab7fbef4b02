package queue

// PipelineJobMsg is the message published when a pipeline run is
// triggered. RunID is the public pipeline run ID; the worker updates
// the matching pipeline_runs row as it processes the job.
type PipelineJobMsg struct {
	RunID          string `json:"pipelineId"`
	Pipeline       string `json:"pipeline"`
	CongressNumber int    `json:"congress_number,omitempty"`
	Session        int    `json:"session,omitempty"`
}
