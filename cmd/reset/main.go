package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

// Wipes the local save so the game starts over from a fresh profile.
// The device identity survives unless -all is given, so a later sync
// still maps to the same remote user.
func main() {
	all := flag.Bool("all", false, "also remove the device identity")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	keys := []string{domain.StorageKeyGameState, domain.StorageKeyCheckpoint}
	if *all {
		keys = append(keys, domain.StorageKeyDeviceID)
	}

	for _, key := range keys {
		path := filepath.Join(dataDir, key+".json")
		err := os.Remove(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("%s: nothing to remove\n", key)
		case err != nil:
			log.Fatalf("Failed to remove %s: %v", path, err)
		default:
			log.Printf("Removed %s\n", path)
		}
	}

	fmt.Println("\n✅ Local save reset complete!")
	if !*all {
		fmt.Println("Device identity kept; rerun with -all to remove it too")
	}
}
