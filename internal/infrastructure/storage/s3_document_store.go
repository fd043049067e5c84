package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"easydrive_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const defaultDocumentsBucket = "easydrive-draft-documents"

// S3DocumentStore keeps draft document blobs under
// drafts/{draftID}/{index}_{name}, so one prefix list covers a whole draft.
type S3DocumentStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IDocumentStore = (*S3DocumentStore)(nil)

func NewS3DocumentStore(client *s3.Client) *S3DocumentStore {
	bucket := os.Getenv("DOCUMENTS_BUCKET")
	if bucket == "" {
		bucket = defaultDocumentsBucket
	}
	return &S3DocumentStore{client: client, bucket: bucket}
}

func (s *S3DocumentStore) Put(ctx context.Context, draftID string, index int, name, contentType string, data []byte) (interfaces.StoredDocument, error) {
	key := documentKey(draftID, index, name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return interfaces.StoredDocument{}, err
	}
	return interfaces.StoredDocument{
		Key:         key,
		Name:        path.Base(key),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func (s *S3DocumentStore) List(ctx context.Context, draftID string) ([]interfaces.StoredDocument, error) {
	prefix := draftPrefix(draftID)
	var docs []interfaces.StoredDocument
	var token *string
	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, err
		}
		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			docs = append(docs, interfaces.StoredDocument{
				Key:  key,
				Name: path.Base(key),
				Size: aws.ToInt64(obj.Size),
			})
		}
		if !aws.ToBool(out.IsTruncated) {
			return docs, nil
		}
		token = out.NextContinuationToken
	}
}

func (s *S3DocumentStore) DeleteAll(ctx context.Context, draftID string) error {
	docs, err := s.List(ctx, draftID)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, len(docs))
	for i, d := range docs {
		objects[i] = types.ObjectIdentifier{Key: aws.String(d.Key)}
	}
	_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &types.Delete{Objects: objects},
	})
	return err
}

func draftPrefix(draftID string) string {
	return fmt.Sprintf("drafts/%s/", draftID)
}

// documentKey flattens the upload name so a hostile filename cannot escape
// the draft's prefix.
func documentKey(draftID string, index int, name string) string {
	name = strings.ReplaceAll(path.Base(name), "/", "_")
	if name == "" || name == "." {
		name = "document"
	}
	return fmt.Sprintf("%s%d_%s", draftPrefix(draftID), index, name)
}
