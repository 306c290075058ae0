package repository

import "context"

// StorageTarget says where published reports go.
type StorageTarget struct {
	Bucket  string
	Prefix  string
	Profile string
	Region  string
}

// ReportStorageRepository publishes exported report files.
type ReportStorageRepository interface {
	// Identity returns the account the target's credentials belong to.
	Identity(ctx context.Context, target StorageTarget) (string, error)
	// Publish uploads a local file and returns its URI.
	Publish(ctx context.Context, target StorageTarget, localPath string) (string, error)
}
