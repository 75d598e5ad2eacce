package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"
	"os"

	"github.com/denisbrodbeck/machineid"

	"github.com/robokits/nxt.go/pkg/comm/serial"
	"github.com/robokits/nxt.go/pkg/framework"
	"github.com/robokits/nxt.go/pkg/nxt"
	"github.com/robokits/nxt.go/pkg/telemetry"
)

var (
	device     string
	baudRate   int
	mqttURL    = "mqtt://localhost:1883/nxt/"
	brickName  = "brick"
	interval   = telemetry.DefaultInterval
	sensorPort int
	sensorMode = "none"
)

func init() {
	if val := os.Getenv("NXT_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&device, "device", device, "Serial device of the brick link.")
	flag.IntVar(&baudRate, "baud", baudRate, "Baud rate of the serial device.")
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&brickName, "name", brickName, "Brick name in telemetry topics.")
	flag.DurationVar(&interval, "interval", interval, "Polling interval.")
	flag.IntVar(&sensorPort, "sensor", sensorPort, "Sensor port (1-4) to poll, 0 to disable.")
	flag.StringVar(&sensorMode, "color", sensorMode, "Color mode for the polled sensor.")
}

func main() {
	flag.Parse()

	if device == "" {
		log.Fatalln("-device required")
	}
	conn, err := serial.Dial(device, baudRate)
	if err != nil {
		log.Fatalln(err)
	}
	defer conn.Close()

	queue, err := telemetry.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	token := queue.Connect()
	token.Wait()
	if err = token.Error(); err != nil {
		log.Fatalln(err)
	}
	defer queue.Close()

	hostID, err := machineid.ID()
	if err != nil {
		log.Fatalln(err)
	}

	publisher := &telemetry.Publisher{
		Queue:    queue,
		Brick:    nxt.NewBrick(conn),
		Name:     hostID + "/" + brickName,
		Interval: interval,
	}
	if sensorPort != 0 {
		port, err := nxt.InputPortNumbered(sensorPort)
		if err != nil {
			log.Fatalln(err)
		}
		mode, err := nxt.ColorModeNamed(sensorMode)
		if err != nil {
			log.Fatalln(err)
		}
		publisher.Sensor = &telemetry.SensorPoll{Port: port, Mode: mode}
	}

	err = framework.NewRunner().
		HandleSignals().
		Go(framework.NamedRun("telemetry", publisher)).
		Wait()
	if err != nil {
		log.Fatalln(err)
	}
}
