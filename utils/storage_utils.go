package utils

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3 connection settings come from the environment so buckets can differ per
// deployment. S3_ENDPOINT is optional and supports S3-compatible providers.
func s3Settings() (bucket, region, endpoint string) {
	bucket = os.Getenv("S3_BUCKET")
	region = os.Getenv("S3_REGION")
	if region == "" {
		region = "us-east-1"
	}
	endpoint = os.Getenv("S3_ENDPOINT")
	return
}

func getS3Client() (*s3.S3, error) {
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("S3 credentials are not configured")
	}

	_, region, endpoint := s3Settings()
	cfg := &aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}

// UploadFileToS3 stores file under folder/fileName with public-read access
// and returns the public URL.
func UploadFileToS3(file []byte, fileName, folder, contentType string) (string, error) {
	bucket, _, endpoint := s3Settings()
	if bucket == "" {
		return "", fmt.Errorf("S3_BUCKET is not configured")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	s3Client, err := getS3Client()
	if err != nil {
		return "", err
	}

	_, err = s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	if endpoint != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
		return fmt.Sprintf("https://%s.%s/%s", bucket, host, filePath), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, filePath), nil
}
