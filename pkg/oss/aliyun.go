// Package oss 对象存储服务
package oss

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Uploader 上传器接口
type Uploader interface {
	Upload(ctx context.Context, objectKey string, reader io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, objectKey string) error
	GetURL(objectKey string) string
}

// AliyunConfig 阿里云 OSS 配置
type AliyunConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	Domain          string // 自定义 CDN 域名（可选），公开 URL 不携带任何凭证信息
	BasePath        string // 基础路径，如 "hotel/floors"
}

// AliyunUploader 阿里云 OSS 上传器
type AliyunUploader struct {
	client *oss.Client
	bucket *oss.Bucket
	config *AliyunConfig
}

// NewAliyunUploader 创建阿里云 OSS 上传器
func NewAliyunUploader(config *AliyunConfig) (*AliyunUploader, error) {
	client, err := oss.New(config.Endpoint, config.AccessKeyID, config.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("创建 OSS 客户端失败: %v", err)
	}

	bucket, err := client.Bucket(config.BucketName)
	if err != nil {
		return nil, fmt.Errorf("获取 Bucket 失败: %v", err)
	}

	return &AliyunUploader{
		client: client,
		bucket: bucket,
		config: config,
	}, nil
}

// Upload 上传文件
func (u *AliyunUploader) Upload(ctx context.Context, objectKey string, reader io.Reader, contentType string) (string, error) {
	fullKey := u.getFullKey(objectKey)

	var options []oss.Option
	if contentType != "" {
		options = append(options, oss.ContentType(contentType))
	}

	err := u.bucket.PutObject(fullKey, reader, options...)
	if err != nil {
		return "", fmt.Errorf("上传文件失败: %v", err)
	}

	return u.GetURL(objectKey), nil
}

// Delete 删除文件
func (u *AliyunUploader) Delete(ctx context.Context, objectKey string) error {
	fullKey := u.getFullKey(objectKey)
	return u.bucket.DeleteObject(fullKey)
}

// GetURL 获取文件 URL
func (u *AliyunUploader) GetURL(objectKey string) string {
	fullKey := u.getFullKey(objectKey)

	if u.config.Domain != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(u.config.Domain, "/"), fullKey)
	}

	return fmt.Sprintf("https://%s.%s/%s", u.config.BucketName, u.config.Endpoint, fullKey)
}

// getFullKey 获取完整的对象键
func (u *AliyunUploader) getFullKey(objectKey string) string {
	if u.config.BasePath == "" {
		return objectKey
	}
	return path.Join(u.config.BasePath, objectKey)
}

// GetContentType 根据文件扩展名获取 Content-Type
func GetContentType(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	contentTypes := map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
		".svg":  "image/svg+xml",
		".mp4":  "video/mp4",
	}

	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// MockUploader 模拟上传器（用于开发/测试）
type MockUploader struct {
	Files        map[string][]byte
	ContentTypes map[string]string
	UploadErr    error
}

// NewMockUploader 创建模拟上传器
func NewMockUploader() *MockUploader {
	return &MockUploader{
		Files:        make(map[string][]byte),
		ContentTypes: make(map[string]string),
	}
}

// Upload 模拟上传
func (u *MockUploader) Upload(ctx context.Context, objectKey string, reader io.Reader, contentType string) (string, error) {
	if u.UploadErr != nil {
		return "", u.UploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	u.Files[objectKey] = data
	u.ContentTypes[objectKey] = contentType
	return u.GetURL(objectKey), nil
}

// Delete 模拟删除
func (u *MockUploader) Delete(ctx context.Context, objectKey string) error {
	delete(u.Files, objectKey)
	return nil
}

// GetURL 获取模拟 URL
func (u *MockUploader) GetURL(objectKey string) string {
	return fmt.Sprintf("https://mock-oss.example.com/%s", objectKey)
}
