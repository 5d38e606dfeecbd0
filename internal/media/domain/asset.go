package domain

import "io"

// QueueName publish jobs queue
const QueueName = "media_publish_jobs"

const (
	// StagingPrefix freshly uploaded objects, not yet referenced by content
	StagingPrefix = "staging"
	// PublicPrefix objects promoted by the publish worker
	PublicPrefix = "public"
)

// AssetKind what the uploaded file is used for
type AssetKind string

const (
	// AssetThumbnail course, chapter or video thumbnail image
	AssetThumbnail AssetKind = "thumbnail"
	// AssetVideo video source file
	AssetVideo AssetKind = "video"
)

// UploadAssetReq incoming upload
type UploadAssetReq struct {
	FileName    string
	Kind        AssetKind
	ContentType string
	File        io.Reader
}

// UploadAssetRes result of an accepted upload. ObjectName is the key
// the asset will live under once the publish worker promotes it.
type UploadAssetRes struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	Message    string `json:"message"`
}

// PublishJob queued promotion of a staged object to the public prefix
type PublishJob struct {
	StagingObject string    `json:"staging_object"`
	PublicObject  string    `json:"public_object"`
	Kind          AssetKind `json:"kind"`
}
