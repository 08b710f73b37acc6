package config

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
)

type Dynamo interface {
	AWSConfig() *aws.Config
}

var _ Dynamo = ProdDynamo{}

type ProdDynamo struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

func (p ProdDynamo) AWSConfig() *aws.Config {
	return aws.NewConfig().
		WithCredentials(credentials.NewStaticCredentials(
			p.AccessKeyID,
			p.SecretAccessKey,
			"",
		)).
		WithRegion(p.Region)
}

var _ Dynamo = LocalDynamo{}

// LocalDynamo points at dynamodb-local, which needs credentials
// but doesn't check them
type LocalDynamo struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Host            string
}

func (l LocalDynamo) AWSConfig() *aws.Config {
	return ProdDynamo{
		AccessKeyID:     l.AccessKeyID,
		SecretAccessKey: l.SecretAccessKey,
		Region:          l.Region,
	}.AWSConfig().WithEndpoint(l.Host)
}
