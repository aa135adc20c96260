// emasim runs a simulated EMA-8314 module with slowly drifting channel
// temperatures so emalog and emactl can be exercised without hardware.
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/marsmathis/ema8314/emasim"
)

func main() {
	addr := flag.String("addr", ":6936", "host:port to answer on")
	broken := flag.Int("broken", -1, "channel to report as broken (-1 for none)")
	flag.Parse()

	sim, err := emasim.Listen(*addr)
	if err != nil {
		log.Fatalf("Failed to start simulator: %s", err)
	}
	log.Printf("Simulated EMA-8314 answering on %s", sim.Addr())

	if *broken >= 0 && *broken < 4 {
		sim.SetBroken(*broken, true)
	}

	go drift(sim)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
	sim.Close()
}

// drift nudges each channel along its own slow sine so the readings
// look alive on the emalog page.
func drift(sim *emasim.Device) {
	base := [4]float32{21.5, 19.0, 23.5, 18.0}
	start := time.Now()
	for range time.Tick(2 * time.Second) {
		t := time.Since(start).Seconds()
		for ch, b := range base {
			v := b + 2*float32(math.Sin(t/60+float64(ch)))
			sim.SetTemperature(ch, v)
		}
	}
}
