package contracts

import "context"

type StorageService interface {
	UploadJSON(ctx context.Context, objectName string, payload []byte) (string, error)
}
