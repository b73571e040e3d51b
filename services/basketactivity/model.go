package basketactivity

import "time"

// Activity is a single recorded basket fact, fed by the basket event stream
type Activity struct {
	UID        string
	BasketUID  string
	EventType  string
	ProductUID string
	Quantity   int
	CreatedAt  time.Time
}
