// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package geo resolves free-text job location strings against a three-tier
// geographic gazetteer (countries, first-level administrative regions,
// cities) built once at startup from Geonames-format tab-separated files.
// It is a shared, read-only engine: populated by Load before the pipeline
// fan-out begins, then queried concurrently by every worker without
// locking.
package geo

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
)

// countryEntry is the resolved (code, name) pair a country lookup yields.
type countryEntry struct {
	code string
	name string
}

// regionEntry is the resolved (id, name) pair a region lookup yields, where
// id is the composite "<CC>.<REGCODE>" identifier.
type regionEntry struct {
	id   string
	name string
}

// cityEntry is one candidate city a name can resolve to.
type cityEntry struct {
	name        string
	countryCode string
	admin1      string
	population  int
}

// Gazetteer holds the three geographic mappings plus the lookup indexes
// built over them. Safe for concurrent reads once Load has returned.
type Gazetteer struct {
	countries map[string]string // code -> name
	regions   map[string]string // "US.CA" -> "California"

	countryLookup map[string]countryEntry // lowercased code/name/alias -> entry
	regionLookup  map[string]regionEntry  // "<cc>.<code-or-name>" lowercased -> entry
	admin1Infer   map[string]string       // lowercased region code/name -> inferred country code

	cities map[string][]cityEntry // lowercased (or ascii-folded) name -> candidates, population desc
}

// NewGazetteer builds an empty gazetteer with the built-in country alias
// set; call Load to populate it from Geonames files before resolving.
func NewGazetteer() *Gazetteer {
	g := &Gazetteer{
		countries:     make(map[string]string),
		regions:       make(map[string]string),
		countryLookup: make(map[string]countryEntry),
		regionLookup:  make(map[string]regionEntry),
		admin1Infer:   make(map[string]string),
		cities:        make(map[string][]cityEntry),
	}
	g.countryLookup["usa"] = countryEntry{code: "US", name: "United States"}
	g.countryLookup["uk"] = countryEntry{code: "GB", name: "United Kingdom"}
	return g
}

// Countries returns the loaded code -> name map, for seeding the countries
// table.
func (g *Gazetteer) Countries() map[string]string {
	return g.countries
}

// Regions returns the loaded "<CC>.<REG>" -> name map, for seeding the
// regions table.
func (g *Gazetteer) Regions() map[string]string {
	return g.regions
}

// Load populates the gazetteer from the three Geonames-format files:
// countryInfo.txt (code, ..., name at column 4, "#"-prefixed comment lines),
// admin1CodesASCII.txt ("CC.REG"\tname, >= 2 columns), and cities15000.txt
// (>= 15 columns; 1=name, 2=asciiname, 8=country_code, 10=admin1,
// 14=population). Nothing in the city pass depends on load order.
func (g *Gazetteer) Load(logger *slog.Logger, countriesPath, admin1Path, citiesPath string) error {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("geo.load.start")

	if err := g.loadCountries(countriesPath); err != nil {
		return fmt.Errorf("load countries: %w", err)
	}
	logger.Info("geo.load.countries", "count", len(g.countries))

	if err := g.loadRegions(admin1Path); err != nil {
		return fmt.Errorf("load regions: %w", err)
	}
	logger.Info("geo.load.regions", "count", len(g.regions))

	count, err := g.loadCities(citiesPath)
	if err != nil {
		return fmt.Errorf("load cities: %w", err)
	}
	logger.Info("geo.load.cities", "count", count)

	return nil
}

func (g *Gazetteer) loadCountries(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 5 {
			continue
		}
		code := parts[0]
		name := parts[4]

		g.countryLookup[strings.ToLower(code)] = countryEntry{code: code, name: name}
		g.countryLookup[strings.ToLower(name)] = countryEntry{code: code, name: name}
		g.countries[code] = name
	}
	return scanner.Err()
}

func (g *Gazetteer) loadRegions(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		id := parts[0]
		name := parts[1]

		idParts := strings.SplitN(id, ".", 2)
		if len(idParts) == 2 {
			countryCode := strings.ToLower(idParts[0])
			regionCode := strings.ToLower(idParts[1])

			entry := regionEntry{id: id, name: name}
			g.regionLookup[countryCode+"."+regionCode] = entry
			g.regionLookup[countryCode+"."+strings.ToLower(name)] = entry

			// Ambiguous region codes/names resolve to US when a US entry
			// exists, else to whichever country is seen first.
			if countryCode == "us" {
				g.admin1Infer[regionCode] = idParts[0]
				g.admin1Infer[strings.ToLower(name)] = idParts[0]
			} else {
				if _, exists := g.admin1Infer[regionCode]; !exists {
					g.admin1Infer[regionCode] = idParts[0]
				}
				if _, exists := g.admin1Infer[strings.ToLower(name)]; !exists {
					g.admin1Infer[strings.ToLower(name)] = idParts[0]
				}
			}
		}

		g.regions[id] = name
	}
	return scanner.Err()
}

func (g *Gazetteer) loadCities(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Split(line, "\t")
		if len(parts) < 15 {
			continue
		}

		originalName := parts[1]
		nameLower := strings.ToLower(originalName)
		asciiLower := strings.ToLower(parts[2])
		countryCode := parts[8]
		admin1 := parts[10]
		population, _ := strconv.Atoi(parts[14])

		entry := cityEntry{
			name:        originalName,
			countryCode: countryCode,
			admin1:      admin1,
			population:  population,
		}

		g.cities[nameLower] = append(g.cities[nameLower], entry)
		if asciiLower != nameLower {
			g.cities[asciiLower] = append(g.cities[asciiLower], entry)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}

	for name, entries := range g.cities {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].population > entries[j].population
		})
		g.cities[name] = entries
	}

	return count, nil
}
