package filestorage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"grc-maturity-backend/config"
)

// Provider guarda y recupera evidencias en un bucket por empresa
type Provider interface {
	SubirEvidencia(ctx context.Context, empresaID, objeto, contentType string, fileReader io.Reader, fileSize int64) error
	DescargarEvidencia(ctx context.Context, empresaID, objeto string) ([]byte, error)
	EliminarEvidencia(ctx context.Context, empresaID, objeto string) error
	MakeEmpresaBucket(ctx context.Context, empresaID string) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) SubirEvidencia(ctx context.Context, empresaID, objeto, contentType string, fileReader io.Reader, fileSize int64) error {
	err := i.MakeEmpresaBucket(ctx, empresaID)
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = i.s3client.PutObject(ctx, i.getEmpresaBucketName(empresaID), objeto, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (i impl) DescargarEvidencia(ctx context.Context, empresaID, objeto string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, i.getEmpresaBucketName(empresaID), objeto, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func (i impl) EliminarEvidencia(ctx context.Context, empresaID, objeto string) error {
	return i.s3client.RemoveObject(ctx, i.getEmpresaBucketName(empresaID), objeto, minio.RemoveObjectOptions{})
}

func (i impl) MakeEmpresaBucket(ctx context.Context, empresaID string) error {
	bucketName := i.getEmpresaBucketName(empresaID)
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

func (i impl) getEmpresaBucketName(empresaID string) string {
	return fmt.Sprintf("%s-%s", config.Conf.S3.BucketName, empresaID)
}
