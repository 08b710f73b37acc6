package config

import "google.golang.org/api/option"

type CloudStorage interface {
	GetBucket() string
	ClientOptions() []option.ClientOption
}

var _ CloudStorage = ProdCloudStorage{}

// ProdCloudStorage falls back to application default credentials when
// no credentials file is given
type ProdCloudStorage struct {
	CredentialsFile string
	BucketName      string
}

func (p ProdCloudStorage) GetBucket() string {
	return p.BucketName
}

func (p ProdCloudStorage) ClientOptions() []option.ClientOption {
	if p.CredentialsFile == "" {
		return nil
	}

	return []option.ClientOption{option.WithCredentialsFile(p.CredentialsFile)}
}

var _ CloudStorage = LocalCloudStorage{}

// LocalCloudStorage talks to an emulator such as fake-gcs-server
type LocalCloudStorage struct {
	HostEndpoint string
	BucketName   string
}

func (l LocalCloudStorage) GetBucket() string {
	return l.BucketName
}

func (l LocalCloudStorage) ClientOptions() []option.ClientOption {
	return []option.ClientOption{
		option.WithEndpoint(l.HostEndpoint),
		option.WithoutAuthentication(),
	}
}
