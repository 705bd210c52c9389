// Copyright © 2026 by the go-chaskey authors.
// All rights reserved. See LICENSE for details.

// Command avalanche measures the diffusion of the Chaskey permutation
// empirically: it flips single message and key bits over random
// samples and charts how many tag bits change in response. A healthy
// primitive averages 64 flipped tag bits per input bit, at every
// position.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/bits"
	"math/rand"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	chaskey "github.com/MikeMcPherson/go-chaskey"
)

type summary struct {
	Samples        int     `json:"samples"`
	MsgLen         int     `json:"msg_len"`
	MeanFlipped    float64 `json:"mean_flipped_tag_bits"`
	StdFlipped     float64 `json:"std_flipped_tag_bits"`
	MinPerPosition float64 `json:"min_mean_per_position"`
	MaxPerPosition float64 `json:"max_mean_per_position"`
	ByteChangeRate float64 `json:"tag_byte_change_rate"`
}

func tagDistance(a, b []byte) (bitsFlipped, bytesChanged int) {
	for i := range a {
		bitsFlipped += bits.OnesCount8(a[i] ^ b[i])
		if a[i] != b[i] {
			bytesChanged++
		}
	}
	return
}

// sweep measures, for every flippable bit position, the mean number of
// tag bits that change when that position is flipped. flipKey selects
// whether the position indexes the key or the message.
func sweep(rnd *rand.Rand, samples, msgLen int, flipKey bool) ([]float64, summary) {
	nbits := msgLen * 8
	if flipKey {
		nbits = chaskey.KeySize * 8
	}
	perPos := make([]float64, nbits)

	var all []float64
	var bytesChanged, byteSlots int

	key := make([]byte, chaskey.KeySize)
	msg := make([]byte, msgLen)
	for pos := 0; pos < nbits; pos++ {
		var total int
		for s := 0; s < samples; s++ {
			rnd.Read(key)
			rnd.Read(msg)
			base, err := chaskey.Tag(key, msg, chaskey.TagSize)
			if err != nil {
				log.Fatal(err)
			}
			if flipKey {
				key[pos/8] ^= 1 << uint(pos%8)
			} else {
				msg[pos/8] ^= 1 << uint(pos%8)
			}
			flipped, err := chaskey.Tag(key, msg, chaskey.TagSize)
			if err != nil {
				log.Fatal(err)
			}
			db, dby := tagDistance(base, flipped)
			total += db
			bytesChanged += dby
			byteSlots += chaskey.TagSize
			all = append(all, float64(db))
		}
		perPos[pos] = float64(total) / float64(samples)
	}

	var mean float64
	for _, v := range all {
		mean += v
	}
	mean /= float64(len(all))
	var m2 float64
	for _, v := range all {
		d := v - mean
		m2 += d * d
	}
	std := math.Sqrt(m2 / float64(len(all)-1))

	minP, maxP := perPos[0], perPos[0]
	for _, v := range perPos {
		minP = math.Min(minP, v)
		maxP = math.Max(maxP, v)
	}

	return perPos, summary{
		Samples:        samples,
		MsgLen:         msgLen,
		MeanFlipped:    mean,
		StdFlipped:     std,
		MinPerPosition: minP,
		MaxPerPosition: maxP,
		ByteChangeRate: float64(bytesChanged) / float64(byteSlots),
	}
}

func toBarItems(vals []float64) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newSweepChart(title string, perPos []float64, st summary) *charts.Bar {
	subtitle := fmt.Sprintf("samples/position=%d  mean=%.2f  std=%.2f  min=%.2f  max=%.2f",
		st.Samples, st.MeanFlipped, st.StdFlipped, st.MinPerPosition, st.MaxPerPosition)
	labels := make([]int, len(perPos))
	for i := range labels {
		labels[i] = i
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "500px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("mean flipped tag bits", toBarItems(perPos)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func main() {
	samples := flag.Int("samples", 128, "samples per bit position")
	msgLen := flag.Int("msg-len", 32, "message length in bytes")
	out := flag.String("out", "avalanche.html", "output HTML report")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seed))

	msgPos, msgStats := sweep(rnd, *samples, *msgLen, false)
	keyPos, keyStats := sweep(rnd, *samples, *msgLen, true)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]summary{
		"message_bits": msgStats,
		"key_bits":     keyStats,
	}); err != nil {
		log.Fatal(err)
	}

	page := components.NewPage()
	page.AddCharts(
		newSweepChart("avalanche per message bit", msgPos, msgStats),
		newSweepChart("avalanche per key bit", keyPos, keyStats),
	)
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", *out)
}
