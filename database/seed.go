package database

import (
	"busline/models"
	"busline/sequence"
	"log"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// defaultStations is the boarding/intake network the company operates today.
// Kept as YAML so ops can swap in a full list via a future import tool without
// touching the schema.
const defaultStations = `
stations:
  - name: "HCM Mien Dong"
  - name: "HCM Mien Tay"
  - name: "HN Giap Bat"
  - name: "DN Trung Tam"
  - name: "DL Lien Tinh"
`

type stationSeedFile struct {
	Stations []struct {
		Name string `yaml:"name"`
	} `yaml:"stations"`
}

// SeedStations inserts the default station list when the table is empty.
func SeedStations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Station{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var seed stationSeedFile
	if err := yaml.Unmarshal([]byte(defaultStations), &seed); err != nil {
		return err
	}

	stations := make([]models.Station, 0, len(seed.Stations))
	for _, s := range seed.Stations {
		stations = append(stations, models.Station{
			Name:     s.Name,
			Code:     sequence.StationCode(s.Name),
			IsActive: true,
		})
	}

	if err := db.Create(&stations).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d stations", len(stations))
	return nil
}
