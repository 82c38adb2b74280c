package db

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedDemoData resets the database and populates it with the demo
// dataset: eight profiles, three mutual matches with conversation
// history, one pending incoming like, and one active VIP subscription.
func SeedDemoData(db *gorm.DB) error {
	for _, table := range []string{"messages", "swipes", "subscriptions", "user_preferences", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	// Reset auto-increment sequences
	switch db.Dialector.Name() {
	case "mysql":
		for _, table := range []string{"messages", "swipes", "subscriptions", "user_preferences", "users"} {
			db.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1")
		}
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name IN ('messages','swipes','subscriptions','user_preferences','users')")
	}

	log.Println("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	users := []User{
		{
			Username: "miguel", Name: "Miguel", Age: 30, Gender: "male", LookingFor: "female",
			Bio: "Photographer and nature lover, always hunting for the next trip.", Location: "São Paulo",
			ProfilePicURL: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde",
			Interests:     datatypes.NewJSONSlice([]string{"Photography", "Travel", "Food", "Cinema", "Music"}),
			Photos: datatypes.NewJSONSlice([]string{
				"https://images.unsplash.com/photo-1535713875002-d1d0cf377fde",
				"https://images.unsplash.com/photo-1513267048331-5611cad62e41",
			}),
		},
		{
			Username: "sofia", Name: "Sofia", Age: 28, Gender: "female", LookingFor: "male",
			Bio: "Art and culture enthusiast looking for meaningful connections.", Location: "São Paulo",
			ProfilePicURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
			Interests:     datatypes.NewJSONSlice([]string{"Photography", "Travel", "Yoga"}),
		},
		{
			Username: "lucas", Name: "Lucas", Age: 32, Gender: "male", LookingFor: "female",
			Bio: "Engineer and weekend runner.", Location: "Rio de Janeiro",
			ProfilePicURL: "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6",
			Interests:     datatypes.NewJSONSlice([]string{"Sports", "Technology", "Travel"}),
		},
		{
			Username: "mariana", Name: "Mariana", Age: 26, Gender: "female", LookingFor: "male",
			Bio: "Graphic designer and book lover.", Location: "São Paulo",
			ProfilePicURL: "https://images.unsplash.com/photo-1614283233556-f35b0c801ef1",
			Interests:     datatypes.NewJSONSlice([]string{"Reading", "Art", "Design", "Music"}),
		},
		{
			Username: "julia", Name: "Julia", Age: 25, Gender: "female", LookingFor: "male",
			Bio: "Yoga and meditation teacher.", Location: "São Paulo",
			ProfilePicURL: "https://images.unsplash.com/photo-1534528741775-53994a69daeb",
			Interests:     datatypes.NewJSONSlice([]string{"Yoga", "Meditation", "Reading", "Travel"}),
		},
		{
			Username: "pedro", Name: "Pedro", Age: 30, Gender: "male", LookingFor: "female",
			Bio: "Chef discovering cultures through their food.", Location: "São Paulo",
			ProfilePicURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
			Interests:     datatypes.NewJSONSlice([]string{"Food", "Travel", "Cooking", "Wine"}),
		},
		{
			Username: "amanda", Name: "Amanda", Age: 27, Gender: "female", LookingFor: "male",
			Bio: "Music and festivals, always chasing the next adventure.", Location: "Rio de Janeiro",
			ProfilePicURL: "https://images.unsplash.com/photo-1524504388940-b1c1722653e1",
			Interests:     datatypes.NewJSONSlice([]string{"Music", "Festivals", "Travel", "Art"}),
		},
		{
			Username: "joao", Name: "João", Age: 29, Gender: "male", LookingFor: "female",
			Bio: "Architect with a camera always at hand.", Location: "São Paulo",
			ProfilePicURL: "https://images.unsplash.com/photo-1504257432389-52343af06ae3",
			Interests:     datatypes.NewJSONSlice([]string{"Architecture", "Photography", "Design", "Travel"}),
		},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := db.Create(&users[i]).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", users[i].Username, err)
		}
	}
	log.Printf("Seeded %d users.", len(users))

	byName := map[string]uint64{}
	for _, u := range users {
		byName[u.Username] = u.ID
	}
	miguel, sofia := byName["miguel"], byName["sofia"]
	julia, pedro, amanda := byName["julia"], byName["pedro"], byName["amanda"]

	swipes := []Swipe{
		{UserID1: miguel, UserID2: julia, Liked: true, Matched: true},
		{UserID1: miguel, UserID2: pedro, Liked: true, Matched: true},
		{UserID1: miguel, UserID2: amanda, Liked: true, Matched: true},
		{UserID1: sofia, UserID2: miguel, Liked: true, Matched: false}, // pending incoming like
	}
	if err := db.Create(&swipes).Error; err != nil {
		return fmt.Errorf("failed to seed swipes: %w", err)
	}

	messages := []Message{
		{SenderID: julia, ReceiverID: miguel, Content: "Hi! How are you? 😊", Read: true},
		{SenderID: miguel, ReceiverID: julia, Content: "Hi Julia! Doing great, nice that we matched!", Read: true},
		{SenderID: julia, ReceiverID: miguel, Content: "Same here! I saw you're into photography too. What's your favorite style?", Read: true},
		{SenderID: pedro, ReceiverID: miguel, Content: "So, shall we try that new restaurant? What do you think?", Read: false},
		{SenderID: miguel, ReceiverID: amanda, Content: "For sure! I'll send you the link", Read: true},
	}
	if err := db.Create(&messages).Error; err != nil {
		return fmt.Errorf("failed to seed messages: %w", err)
	}

	now := time.Now()
	sub := Subscription{
		UserID:        miguel,
		PlanType:      PlanMonthly,
		StartDate:     now,
		EndDate:       now.AddDate(0, 1, 0),
		AutoRenew:     true,
		Status:        SubscriptionActive,
		PaymentMethod: "credit_card",
		Amount:        990,
	}
	if err := db.Create(&sub).Error; err != nil {
		return fmt.Errorf("failed to seed subscription: %w", err)
	}
	if err := db.Model(&User{}).Where("id = ?", miguel).Update("is_vip", true).Error; err != nil {
		return fmt.Errorf("failed to flag vip: %w", err)
	}

	return nil
}
