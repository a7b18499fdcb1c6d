package attendance

import (
	"campushub-service/internal/app/contracts"
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type attendanceEventPublisher struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewAttendanceEventPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.AttendanceEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &attendanceEventPublisher{
		Channel: channel,
		Queue:   queue,
	}, nil
}

type attendanceRecordedEvent struct {
	AttendanceID string `json:"attendanceId"`
	StaffID      string `json:"staffId"`
	ClassID      string `json:"classId"`
	Date         string `json:"date"`
	Hour         int    `json:"hour"`
	Present      int    `json:"present"`
	Absent       int    `json:"absent"`
}

func (p *attendanceEventPublisher) PublishRecorded(ctx context.Context, attendance *models.Attendance) error {
	event := attendanceRecordedEvent{
		AttendanceID: attendance.ID.Hex(),
		StaffID:      attendance.StaffID.Hex(),
		ClassID:      attendance.ClassID.Hex(),
		Date:         attendance.Date.Format(constvars.DateKeyLayout),
		Hour:         attendance.Hour,
	}
	for _, record := range attendance.Records {
		if record.Status == constvars.AttendanceStatusPresent {
			event.Present++
		} else {
			event.Absent++
		}
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}
	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	if err := p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}
