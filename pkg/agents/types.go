package agents

// Request describes one content generation run.
type Request struct {
	Topic          string `json:"topic"`
	ContentType    string `json:"contentType"`
	TargetAudience string `json:"targetAudience"`
	Tone           string `json:"tone"`
}

// TaskOutput is the result of a single crew stage.
type TaskOutput struct {
	TaskID string `json:"task_id"`
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

// Result is the combined output of a crew run. FinalOutput is the writer
// stage's content; TaskOutputs keeps each stage's output in run order.
type Result struct {
	TaskOutputs []TaskOutput `json:"task_outputs"`
	FinalOutput string       `json:"final_output"`
}
