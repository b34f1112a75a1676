package models

// UserProfile defines the structure for musician profiles
type UserProfile struct {
	UserID     string   `dynamodbav:"userId" json:"userId"`
	Username   string   `dynamodbav:"username" json:"username"`
	EmailID    string   `dynamodbav:"emailId" json:"emailId"`
	Location   string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Latitude   float64  `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude  float64  `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
	Instrument string   `dynamodbav:"instrument,omitempty" json:"instrument,omitempty"`
	Experience string   `dynamodbav:"experience,omitempty" json:"experience,omitempty"`
	Genres     []string `dynamodbav:"genres,omitempty" json:"genres,omitempty"`
	PhotoKey   string   `dynamodbav:"photoKey,omitempty" json:"photoKey,omitempty"`
	CreatedAt  string   `dynamodbav:"createdAt" json:"createdAt"`

	// DistanceKm is computed per request relative to the viewer; never stored
	DistanceKm int `dynamodbav:"-" json:"distanceKm,omitempty"`
}

// HasCoordinates reports whether the profile carries a usable lat/lng pair.
// Profiles created before location support have both fields zeroed.
func (p UserProfile) HasCoordinates() bool {
	return p.Latitude != 0 || p.Longitude != 0
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"

// UserProfilesEmailIndex is the GSI used to look profiles up by email
const UserProfilesEmailIndex = "emailId-index"
