// RigBudget - PC Component Catalog and Budget Build Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rigbudget

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/rigbudget/internal/logging"
	"github.com/tomtom215/rigbudget/internal/models"
)

const unsplash = "https://images.unsplash.com/"

// SeedComponents is the default component catalog.
var SeedComponents = []models.Component{
	{
		Name:            "Intel Core i9-14900K",
		Type:            models.TypeCPU,
		Price:           9500000,
		ImageURL:        unsplash + "photo-1591488320449-011701bb6704?auto=format&fit=crop&w=500&q=80",
		Specs:           "Socket LGA1700, 24 Cores, up to 6.0 GHz",
		Description:     "Processor flagship terbaru dari Intel untuk gaming dan produktivitas kelas atas.",
		MarketplaceLink: "https://www.tokopedia.com/search?q=intel%20i9%2014900k",
	},
	{
		Name:            "AMD Ryzen 7 7800X3D",
		Type:            models.TypeCPU,
		Price:           6800000,
		ImageURL:        unsplash + "photo-1555618568-9b168a22d7a9?auto=format&fit=crop&w=500&q=80",
		Specs:           "Socket AM5, 8 Cores, 3D V-Cache",
		Description:     "Processor gaming terbaik dengan teknologi 3D V-Cache.",
		MarketplaceLink: "https://www.tokopedia.com/search?q=ryzen%207%207800x3d",
	},
	{
		Name:            "NVIDIA GeForce RTX 4090",
		Type:            models.TypeGPU,
		Price:           32000000,
		ImageURL:        unsplash + "photo-1555616635-6409600377c8?auto=format&fit=crop&w=500&q=80",
		Specs:           "24GB GDDR6X, Ada Lovelace Architecture",
		Description:     "Kartu grafis terkuat di dunia untuk gaming 4K dan rendering.",
		MarketplaceLink: "https://www.tokopedia.com/search?q=rtx%204090",
	},
	{
		Name:            "NVIDIA GeForce RTX 4070",
		Type:            models.TypeGPU,
		Price:           9500000,
		ImageURL:        unsplash + "photo-1627389955611-7053075b0683?auto=format&fit=crop&w=500&q=80",
		Specs:           "12GB GDDR6X",
		Description:     "Kartu grafis mid-high range yang sangat efisien.",
		MarketplaceLink: "https://www.tokopedia.com/search?q=rtx%204070",
	},
	{
		Name:            "Kingston Fury Beast 32GB (2x16GB)",
		Type:            models.TypeRAM,
		Price:           1800000,
		ImageURL:        unsplash + "photo-1562976540-1502c2145186?auto=format&fit=crop&w=500&q=80",
		Specs:           "DDR5 6000MHz CL36",
		Description:     "RAM DDR5 kencang dan stabil untuk gaming.",
		MarketplaceLink: "https://www.tokopedia.com/search?q=kingston%20fury%20ddr5%2032gb",
	},
	{
		Name:            "ASUS ROG Strix Z790-E Gaming WIFI",
		Type:            models.TypeMotherboard,
		Price:           8500000,
		ImageURL:        unsplash + "photo-1544652478-6653e09f9055?auto=format&fit=crop&w=500&q=80",
		Specs:           "LGA1700, DDR5, PCIe 5.0, WiFi 6E",
		Description:     "Motherboard premium dengan fitur lengkap untuk overclocking.",
		MarketplaceLink: "https://www.tokopedia.com/search?q=rog%20z790-e",
	},
	{
		Name:            "Samsung 990 PRO 2TB",
		Type:            models.TypeStorage,
		Price:           3200000,
		ImageURL:        unsplash + "photo-1631451095765-2c91616fc9e6?auto=format&fit=crop&w=500&q=80",
		Specs:           "M.2 NVMe Gen4, up to 7450 MB/s",
		Description:     "SSD NVMe tercepat untuk loading game instan.",
		MarketplaceLink: "https://www.tokopedia.com/search?q=samsung%20990%20pro%202tb",
	},
	{
		Name:            "Corsair RM1000e",
		Type:            models.TypePSU,
		Price:           2500000,
		ImageURL:        unsplash + "photo-1587202372775-e229f172b9d7?auto=format&fit=crop&w=500&q=80",
		Specs:           "1000W 80+ Gold, ATX 3.0",
		Description:     "Power supply fully modular dengan efisiensi tinggi.",
		MarketplaceLink: "https://www.tokopedia.com/search?q=corsair%20rm1000e",
	},
	{
		Name:            "NZXT H9 Flow",
		Type:            models.TypeCase,
		Price:           2800000,
		ImageURL:        unsplash + "photo-1558494949-ef010dbacc31?auto=format&fit=crop&w=500&q=80",
		Specs:           "Mid Tower, Dual Chamber, High Airflow",
		Description:     "Casing PC estetik dengan airflow maksimal.",
		MarketplaceLink: "https://www.tokopedia.com/search?q=nzxt%20h9%20flow",
	},
	{
		Name:            "NZXT Kraken Elite 360",
		Type:            models.TypeCooler,
		Price:           4500000,
		ImageURL:        unsplash + "photo-1544731612-de7f96afe55f?auto=format&fit=crop&w=500&q=80",
		Specs:           "360mm AIO, LCD Display",
		Description:     "Cooler AIO premium dengan layar LCD custom.",
		MarketplaceLink: "https://www.tokopedia.com/search?q=nzxt%20kraken%20elite%20360",
	},
}

const monitorImage = "https://m.media-amazon.com/images/I/71J+e-L+e-L._AC_SL1500_.jpg"

// SeedMonitors is the default monitor catalog.
var SeedMonitors = []models.Monitor{
	{
		Title:       "LG UltraGear 27GR95QE-B",
		Description: "Monitor gaming OLED pertama di dunia dengan refresh rate 240Hz dan response time 0.03ms.",
		Resolution:  "2560 x 1440",
		RefreshRate: 240,
		PanelType:   "OLED",
		ScreenSize:  26.5,
		Price:       14500000,
		Rating:      4.8,
		Featured:    true,
		ImageURL:    monitorImage,
	},
	{
		Title:       "ASUS TUF Gaming VG27AQ",
		Description: "Monitor gaming value terbaik dengan panel IPS 165Hz dan kompatibilitas G-SYNC.",
		Resolution:  "2560 x 1440",
		RefreshRate: 165,
		PanelType:   "IPS",
		ScreenSize:  27,
		Price:       4500000,
		Rating:      4.6,
		Featured:    true,
		ImageURL:    monitorImage,
	},
	{
		Title:       "BenQ ZOWIE XL2546K",
		Description: "Monitor esports standar turnamen dengan DyAc+ Technology untuk kejernihan gerakan terbaik.",
		Resolution:  "1920 x 1080",
		RefreshRate: 240,
		PanelType:   "TN",
		ScreenSize:  24.5,
		Price:       7200000,
		Rating:      4.7,
		ImageURL:    monitorImage,
	},
	{
		Title:       "Samsung Odyssey G9 OLED",
		Description: "Super ultrawide 49 inch monitor dengan curve 1800R dan panel OLED yang memukau.",
		Resolution:  "5120 x 1440",
		RefreshRate: 240,
		PanelType:   "OLED",
		ScreenSize:  49,
		Price:       24000000,
		Rating:      4.9,
		Featured:    true,
		ImageURL:    monitorImage,
	},
	{
		Title:       "KOORUI 24E3",
		Description: "Monitor gaming budget terbaik, 165Hz IPS panel dengan harga sangat terjangkau.",
		Resolution:  "1920 x 1080",
		RefreshRate: 165,
		PanelType:   "IPS",
		ScreenSize:  24,
		Price:       1600000,
		Rating:      4.5,
		ImageURL:    monitorImage,
	},
}

// SeedCatalog inserts the default components and monitors into empty tables.
// Tables that already hold rows are left untouched.
func (db *DB) SeedCatalog(ctx context.Context) error {
	components, monitors, err := db.GetRecordCounts(ctx)
	if err != nil {
		return err
	}

	if components == 0 {
		for i := range SeedComponents {
			c := SeedComponents[i]
			if err := db.CreateComponent(ctx, &c); err != nil {
				return fmt.Errorf("failed to seed component %q: %w", c.Name, err)
			}
		}
		logging.Info().Int("count", len(SeedComponents)).Msg("Seeded component catalog")
	}

	if monitors == 0 {
		for i := range SeedMonitors {
			m := SeedMonitors[i]
			if err := db.CreateMonitor(ctx, &m); err != nil {
				return fmt.Errorf("failed to seed monitor %q: %w", m.Title, err)
			}
		}
		logging.Info().Int("count", len(SeedMonitors)).Msg("Seeded monitor catalog")
	}

	return nil
}
