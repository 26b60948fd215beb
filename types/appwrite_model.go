package types

import (
	"github.com/appwrite/sdk-for-go/account"
	"github.com/appwrite/sdk-for-go/client"
	"github.com/appwrite/sdk-for-go/databases"
	"github.com/appwrite/sdk-for-go/functions"
	"go.uber.org/zap"
)

// AppwriteApp holds the platform handles shared by the whole process.
// Every handle is bound to Client and none of them is mutated after construction.
type AppwriteApp struct {
	Endpoint  string
	ProjectID string
	Client    client.Client
	Account   *account.Account
	Databases *databases.Databases
	Functions *functions.Functions
	Logger    *zap.Logger
}
