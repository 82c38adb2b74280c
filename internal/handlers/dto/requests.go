package dto

type RegisterRequest struct {
	Username      string   `json:"username" binding:"required,min=3,max=64"`
	Password      string   `json:"password" binding:"required,min=6"`
	Name          string   `json:"name" binding:"required"`
	Age           int      `json:"age" binding:"required,gte=18"`
	Bio           string   `json:"bio"`
	Location      string   `json:"location"`
	Gender        string   `json:"gender" binding:"required,oneof=male female"`
	LookingFor    string   `json:"lookingFor" binding:"omitempty,oneof=male female all"`
	ProfilePicURL string   `json:"profilePicUrl"`
	Interests     []string `json:"interests"`
	Photos        []string `json:"photos"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name          *string  `json:"name"`
	Age           *int     `json:"age" binding:"omitempty,gte=18"`
	Bio           *string  `json:"bio"`
	Location      *string  `json:"location"`
	Gender        *string  `json:"gender" binding:"omitempty,oneof=male female"`
	LookingFor    *string  `json:"lookingFor" binding:"omitempty,oneof=male female all"`
	ProfilePicURL *string  `json:"profilePicUrl"`
	Interests     []string `json:"interests"`
	Photos        []string `json:"photos"`
}

type SwipeRequest struct {
	TargetID uint64 `json:"userId2" binding:"required"`
	Liked    *bool  `json:"liked" binding:"required"`
}

type CreateMessageRequest struct {
	ReceiverID uint64 `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Read       *bool  `json:"read"`
}

// PreferencesRequest uses pointers so an explicit 0 survives as an
// override while absent fields take the defaults.
type PreferencesRequest struct {
	MinAge    *int     `json:"minAge"`
	MaxAge    *int     `json:"maxAge"`
	Distance  *int     `json:"distance"`
	Gender    *string  `json:"gender" binding:"omitempty,oneof=male female"`
	Interests []string `json:"interests"`
}

type CreateSubscriptionRequest struct {
	PlanType      string `json:"planType" binding:"required"`
	Amount        *int64 `json:"amount" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
	AutoRenew     *bool  `json:"autoRenew"`
}
