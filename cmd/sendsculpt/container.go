package main

import (
	"context"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sendsculpt/sendsculpt-go/pkg/config"
	"github.com/sendsculpt/sendsculpt-go/pkg/fsx"
	"github.com/sendsculpt/sendsculpt-go/pkg/fsx/fsxlocal"
	"github.com/sendsculpt/sendsculpt-go/pkg/fsx/fsxs3"
	"github.com/sendsculpt/sendsculpt-go/pkg/logx"
	"github.com/sendsculpt/sendsculpt-go/pkg/sendsculpt"
)

// Container wires the client to the configured attachment storage.
type Container struct {
	Config *config.Config

	Files    fsx.FileReader
	S3Client *s3.Client
	Client   *sendsculpt.Client
}

// NewContainer builds the dependencies for one CLI invocation. extra options
// are applied after the ones derived from cfg.
func NewContainer(ctx context.Context, cfg *config.Config, extra ...sendsculpt.Option) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initFileStorage(ctx); err != nil {
		return nil, err
	}

	opts := append(cfg.SendSculpt.ClientOptions(),
		sendsculpt.WithFileReader(c.Files),
		sendsculpt.WithLogger(logx.GetDefaultLogger()),
	)
	c.Client = sendsculpt.NewClient(cfg.SendSculpt.APIKey, append(opts, extra...)...)

	return c, nil
}

func (c *Container) initFileStorage(ctx context.Context) error {
	storage := c.Config.Storage

	switch storage.Mode {
	case config.StorageS3:
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(storage.AWSRegion))
		if err != nil {
			return cliErrors.NewWithCause(ErrStorage, err).WithDetail("mode", storage.Mode)
		}
		c.S3Client = s3.NewFromConfig(awsCfg)
		c.Files = fsxs3.NewS3FileSystem(c.S3Client, storage.S3Bucket, storage.S3Prefix)
		logx.Debugf("attachments read from s3 (bucket: %s, region: %s)", storage.S3Bucket, storage.AWSRegion)

	default:
		localFS, err := fsxlocal.NewLocalFileSystem(storage.AttachmentDir)
		if err != nil {
			return cliErrors.NewWithCause(ErrStorage, err).WithDetail("mode", storage.Mode)
		}
		c.Files = localFS
		logx.Debugf("attachments read from local disk (base: %q)", localFS.GetBasePath())
	}

	return nil
}
