package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var _ Storage = (*S3Storage)(nil)

// s3API subconjunto del cliente S3 usado por el backend (facilita fakes en tests).
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage backend de imágenes sobre un bucket S3. Las URLs resueltas son
// totalmente calificadas y se sirven directamente desde el bucket.
type S3Storage struct {
	bucket string
	client s3API
}

// NewS3Storage construye el backend con credenciales del entorno (cadena por defecto del SDK).
func NewS3Storage(ctx context.Context, bucket string) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}
	return &S3Storage{bucket: bucket, client: s3.NewFromConfig(awsCfg)}, nil
}

// newS3StorageWithClient para tests.
func newS3StorageWithClient(bucket string, client s3API) *S3Storage {
	return &S3Storage{bucket: bucket, client: client}
}

// Save sube el objeto con su content type y devuelve la key relativa.
func (s *S3Storage) Save(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	key := objectName(filename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("subir objeto a S3: %w", err)
	}
	return key, nil
}

// URL resuelve la key a la URL pública del bucket.
func (s *S3Storage) URL(path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, path)
}

// Delete elimina el objeto del bucket. Key vacía es un no-op.
func (s *S3Storage) Delete(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("eliminar objeto de S3: %w", err)
	}
	return nil
}
