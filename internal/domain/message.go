package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageSender identifies which side of the trainer/customer thread wrote
// a message.
type MessageSender string

const (
	SenderTrainer  MessageSender = "trainer"
	SenderCustomer MessageSender = "customer"
)

// Message is one entry in the conversation between a trainer and one of
// their customers. Read is flipped when the recipient fetches the thread.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID primitive.ObjectID `bson:"customerId" json:"customerId"`
	TrainerID  primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Sender     MessageSender      `bson:"sender" json:"sender"`
	Body       string             `bson:"body" json:"body"`
	Read       bool               `bson:"read" json:"read"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
