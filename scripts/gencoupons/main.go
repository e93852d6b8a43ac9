package main

import (
	"compress/gzip"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type sampleCoupon struct {
	code    string
	percent float64
}

// Writes sample gzipped coupon files of CODE,PERCENT lines.
// A code listed in several files resolves to its largest percent.
func main() {
	dataDir := flag.String("dir", "data/coupons", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	coupons := map[string][]sampleCoupon{
		"seasonal.gz": {
			{"SUMMER2024", 10},
			{"WINTER2024", 15},
			{"EID25", 25},
		},
		"loyalty.gz": {
			{"WELCOME10", 10},
			{"VIP20", 20},
			{"EID25", 30},
		},
	}

	for filename, set := range coupons {
		filePath := filepath.Join(*dataDir, filename)

		if err := createCouponFile(filePath, set); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d codes\n", filePath, len(set))
	}

	fmt.Println("\nSample coupon files created successfully!")
	fmt.Println("EID25 appears in both files and resolves to 30%.")
}

func createCouponFile(filePath string, coupons []sampleCoupon) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	for _, c := range coupons {
		if _, err := fmt.Fprintf(gzipWriter, "%s,%g\n", c.code, c.percent); err != nil {
			return fmt.Errorf("failed to write coupon: %w", err)
		}
	}

	return nil
}
