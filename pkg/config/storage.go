package config

import "fmt"

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// StorageConfig selects where attachment file paths are read from.
type StorageConfig struct {
	Mode          string
	AttachmentDir string
	S3Bucket      string
	S3Prefix      string
	AWSRegion     string
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Mode:          getEnv("SENDSCULPT_STORAGE_MODE", StorageLocal),
		AttachmentDir: getEnv("SENDSCULPT_ATTACHMENT_DIR", ""),
		S3Bucket:      getEnv("SENDSCULPT_S3_BUCKET", ""),
		S3Prefix:      getEnv("SENDSCULPT_S3_PREFIX", ""),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
	}
}

func (c StorageConfig) Validate() error {
	switch c.Mode {
	case StorageLocal:
		return nil
	case StorageS3:
		if c.S3Bucket == "" {
			return configErrors.NewWithMessage(ErrMissingValue, "SENDSCULPT_S3_BUCKET is required when SENDSCULPT_STORAGE_MODE=s3").
				WithDetail("key", "SENDSCULPT_S3_BUCKET")
		}
		return nil
	default:
		return configErrors.NewWithMessage(ErrInvalidValue, fmt.Sprintf("unknown SENDSCULPT_STORAGE_MODE %q (use 'local' or 's3')", c.Mode)).
			WithDetail("key", "SENDSCULPT_STORAGE_MODE")
	}
}
