package types

const ACCOUNT_TYPE_EMAIL = "email"

type Account struct {
	Type              string `bson:"type" json:"type"`
	AccountID         string `bson:"accountID" json:"accountID"`
	Password          string `bson:"password" json:"-"`
	PreferredLanguage string `bson:"preferredLanguage" json:"preferredLanguage"`

	// Rate limiting
	FailedLoginAttempts []int64 `bson:"failedLoginAttempts" json:"-"`
}
