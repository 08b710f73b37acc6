package testing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/song-catalog/src/shared/lib/dynamo"
	"os"
)

// DynamoDB tests need dynamodb-local running on DynamoDBHost
const DynamoTestsEnv = "SONGS_DYNAMO_TESTS"

func RequireDynamo() {
	if os.Getenv(DynamoTestsEnv) == "" {
		Skip(DynamoTestsEnv + " is not set, skipping tests against dynamodb-local")
	}
}

func MakeTestDB(testRegion string) dynamolib.DynamoDBWrapper {
	return dynamolib.Open(DynamoConfig(testRegion))
}

func BeforeSuiteDB(testRegion string) dynamolib.DynamoDBWrapper {
	db := MakeTestDB(testRegion)
	DeleteAllTables(db)
	return db
}

func AfterSuiteDB(db dynamolib.DynamoDBWrapper) {
	DeleteAllTables(db)
}

func DeleteAllTables(db dynamolib.DynamoDBWrapper) {
	tableResults := db.ListTables()
	tableNames := ExpectSuccess(tableResults.All())

	for _, tableName := range tableNames {
		err := db.Table(tableName).DeleteTable().Run()
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
	}
}
