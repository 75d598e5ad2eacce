package main

//go-build: CGO_ENABLED=0

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/robokits/nxt.go/pkg/telemetry"
)

var (
	mqttURL = "mqtt://localhost:1883/nxt/"
)

func init() {
	if val := os.Getenv("NXT_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := telemetry.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	token := q.Connect()
	token.Wait()
	if err = token.Error(); err != nil {
		log.Fatalln(err)
	}

	q.Sub("#", telemetry.Handler(func(topic string, payload []byte) {
		var reading telemetry.Reading
		if err := json.Unmarshal(payload, &reading); err != nil {
			log.Printf("%s: bad reading: %v", topic, err)
			return
		}
		if reading.Light != nil {
			log.Printf("%s: battery=%dmV light=%d", topic, reading.BatteryMv, *reading.Light)
			return
		}
		log.Printf("%s: battery=%dmV", topic, reading.BatteryMv)
	}))
	<-(chan struct{})(nil)
}
