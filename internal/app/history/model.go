package history

import "time"

type Record struct {
	ID          string    `json:"id"`
	BatchID     string    `json:"batch_id"`
	FileName    string    `json:"file_name"`
	ObjectKey   string    `json:"object_key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
