package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Tracking struct {
	Carrier        string    `json:"carrier"`
	TrackingNumber string    `json:"tracking_number"`
	URL            string    `json:"url,omitempty"`
	ShippedAt      time.Time `json:"shipped_at"`
}

type FulfillmentEvent struct {
	OrderID  string    `json:"order_id"`
	Status   string    `json:"status"`
	Note     string    `json:"note,omitempty"`
	Tracking *Tracking `json:"tracking,omitempty"`
}

var carriers = []string{"DHL", "UPS", "FedEx", "CDEK"}

func randomString(n int) string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// lifecycle is what the warehouse reports for a confirmed order.
func lifecycle(orderID string) []FulfillmentEvent {
	carrier := carriers[rand.Intn(len(carriers))]
	number := carrier + randomString(10)
	return []FulfillmentEvent{
		{OrderID: orderID, Status: "processing", Note: "picked"},
		{OrderID: orderID, Status: "shipped", Note: "left warehouse", Tracking: &Tracking{
			Carrier:        carrier,
			TrackingNumber: number,
			URL:            fmt.Sprintf("https://track.example.com/%s", number),
			ShippedAt:      time.Now(),
		}},
		{OrderID: orderID, Status: "delivered"},
	}
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "fulfillment", "fulfillment topic")
	orders := flag.String("orders", "", "comma separated confirmed order ids")
	interval := flag.Duration("interval", 2*time.Second, "delay between events")
	flag.Parse()

	if *orders == "" {
		log.Fatal("no order ids given")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var queue []FulfillmentEvent
	for _, id := range strings.Split(*orders, ",") {
		queue = append(queue, lifecycle(strings.TrimSpace(id))...)
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for _, event := range queue {
		select {
		case <-ticker.C:
			data, _ := json.Marshal(event)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.OrderID), Value: data}); err != nil {
				log.Println("failed to publish", event.OrderID, err)
				continue
			}
			log.Println("event published", event.OrderID, event.Status)
		case <-ctx.Done():
			return
		}
	}
}
