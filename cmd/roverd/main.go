package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/golang/glog"
	xws "golang.org/x/net/websocket"

	"github.com/robotalks/rover.go/pkg/env"
	"github.com/robotalks/rover.go/pkg/firmware"
	"github.com/robotalks/rover.go/pkg/firmware/drivers/sim"
	fx "github.com/robotalks/rover.go/pkg/framework"
	mqtttr "github.com/robotalks/rover.go/pkg/transport/mqtt"
	serialtr "github.com/robotalks/rover.go/pkg/transport/serial"
	wstr "github.com/robotalks/rover.go/pkg/transport/websocket"
)

var wsAddr string

func init() {
	env.SetupFlags()
	flag.StringVar(&wsAddr, "ws", "", "Listen address for websocket controllers")
}

func newHardware() firmware.Hardware {
	// Real actuation is bound behind the capability interfaces; the
	// simulated drivers let the firmware run anywhere.
	return firmware.Hardware{
		Motor:   &sim.Motor{},
		Lights:  &sim.Lights{},
		Buzzer:  &sim.Buzzer{},
		Sensors: &sim.LineSensors{},
		Display: &sim.Display{},
	}
}

func engineRun(fw *firmware.Firmware) fx.RunFunc {
	return func(ctx context.Context) error {
		if err := fw.Run(ctx); err != io.EOF {
			return err
		}
		return nil
	}
}

func main() {
	flag.Parse()

	conf := env.NewConfig()
	hw := newHardware()
	runner := fx.NewRunner().HandleSignals()

	switch {
	case conf.SerialDevice != "":
		port, err := (&serialtr.Config{Device: conf.SerialDevice, Baud: conf.SerialBaud}).Open()
		if err != nil {
			log.Fatalln(err)
		}
		fw := firmware.New(port, hw)
		runner.Go(fx.NamedRun("serial", fx.RunFunc(func(ctx context.Context) error {
			return fx.RunWithContextCloser(ctx, port, func() error {
				return engineRun(fw)(ctx)
			})
		})))
	case conf.MQTTBrokerURL != "":
		rw, err := mqtttr.NewReadWriter(conf.MQTTBrokerURL)
		if err != nil {
			log.Fatalln(err)
		}
		rw.ForRover(conf.Topic())
		glog.Infof("rover %q", conf.Topic())
		runner.Go(fx.NamedRun("mqtt", rw))
		runner.Go(fx.NamedRun("engine", engineRun(firmware.New(rw, hw))))
	case wsAddr != "":
		// One controller session at a time: the engine owns the
		// hardware for the lifetime of a connection.
		var lock sync.Mutex
		srv := &http.Server{Addr: wsAddr, Handler: xws.Handler(func(conn *xws.Conn) {
			lock.Lock()
			defer lock.Unlock()
			glog.Infof("controller %s connected", conn.Request().RemoteAddr)
			if err := engineRun(firmware.New(wstr.New(conn), hw))(context.Background()); err != nil {
				glog.Warningf("session: %v", err)
			}
		})}
		runner.Go(fx.NamedRun("ws", fx.RunFunc(func(ctx context.Context) error {
			err := fx.RunWithContextCancel(ctx, func() { srv.Close() }, srv.ListenAndServe)
			if err == http.ErrServerClosed {
				return nil
			}
			return err
		})))
	default:
		log.Fatalln("one of -serial, -mqtt or -ws is required")
	}

	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}
