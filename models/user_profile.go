package models

type UserProfile struct {
	UID             string `dynamodbav:"uid" json:"uid"` // ✅ Partition Key
	Email           string `dynamodbav:"email" json:"email"`
	DisplayName     string `dynamodbav:"displayName" json:"displayName"`
	ProfileImageURL string `dynamodbav:"profileImageUrl" json:"profileImageUrl"`
	City            string `dynamodbav:"city" json:"city"`
	CreatedAt       string `dynamodbav:"createdAt" json:"createdAt"`
}
