// Package subscriberdto holds the request body of the newsletter subscription.
package subscriberdto

// SubscribeInput is the body of POST /subscribers
type SubscribeInput struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// NoUpdateInput stands in for the update body; subscribers have no update route
type NoUpdateInput struct{}
