package model

// AnnotationRecord is one completed annotation in the labeling tool's export shape.
// The pointer fields are always nil; they exist so the keys are emitted as null.
type AnnotationRecord struct {
	ID               int           `json:"id"`
	CreatedUsername  string        `json:"created_username"`
	CreatedAgo       string        `json:"created_ago"`
	CompletedBy      CompletedBy   `json:"completed_by"`
	DraftCreatedAt   string        `json:"draft_created_at"`
	Task             TaskEnvelope  `json:"task"`
	Project          int           `json:"project"`
	UpdatedBy        int           `json:"updated_by"`
	Result           []ResultEntry `json:"result"`
	WasCancelled     bool          `json:"was_cancelled"`
	GroundTruth      bool          `json:"ground_truth"`
	CreatedAt        string        `json:"created_at"`
	UpdatedAt        string        `json:"updated_at"`
	LeadTime         float64       `json:"lead_time"`
	ImportID         *int          `json:"import_id"`
	LastAction       *string       `json:"last_action"`
	ParentPrediction *int          `json:"parent_prediction"`
	ParentAnnotation *int          `json:"parent_annotation"`
	LastCreatedBy    *int          `json:"last_created_by"`
}

// CompletedBy attributes a record to the persona that produced it.
type CompletedBy struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Persona   Persona `json:"persona"`
}

// TaskEnvelope wraps the echoed task payload with labeling bookkeeping.
type TaskEnvelope struct {
	ID                     int            `json:"id"`
	Data                   any            `json:"data"`
	Meta                   map[string]any `json:"meta"`
	CreatedAt              string         `json:"created_at"`
	UpdatedAt              string         `json:"updated_at"`
	IsLabeled              bool           `json:"is_labeled"`
	Overlap                int            `json:"overlap"`
	InnerID                int            `json:"inner_id"`
	TotalAnnotations       int            `json:"total_annotations"`
	CancelledAnnotations   int            `json:"cancelled_annotations"`
	TotalPredictions       int            `json:"total_predictions"`
	CommentCount           int            `json:"comment_count"`
	UnresolvedCommentCount int            `json:"unresolved_comment_count"`
	LastCommentUpdatedAt   *string        `json:"last_comment_updated_at"`
	Project                int            `json:"project"`
	UpdatedBy              int            `json:"updated_by"`
	FileUpload             *string        `json:"file_upload"`
	CommentAuthors         []int          `json:"comment_authors"`
}

// ResultEntry is one labeled field of an annotation.
type ResultEntry struct {
	ID       string `json:"id"`
	FromName string `json:"from_name"`
	ToName   string `json:"to_name"`
	Type     string `json:"type"` // choices, textarea, rating
	Value    any    `json:"value"`
	Origin   string `json:"origin"`
}
