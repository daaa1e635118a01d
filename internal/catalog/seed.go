package catalog

// Seed returns the Mercari shipping catalog: two carrier categories, eight
// services, eight fixed-price options and the Takkyubin/Yu-Pack size-tier
// ladders. It is the default dataset for the in-memory store and the row set
// cmd/seed installs into Postgres.
func Seed() Dataset {
	return Dataset{
		Categories: []Category{
			{ID: 1, Name: "Rakuraku Mercari Bin", UnderlyingCarrier: "Yamato Transport", Status: StatusActive},
			{ID: 2, Name: "Yuyu Mercari Bin", UnderlyingCarrier: "Japan Post", Status: StatusActive},
		},
		Services: []Service{
			{ID: 1, CategoryID: 1, Name: "Neko-Pos", Status: StatusActive},
			{ID: 2, CategoryID: 1, Name: "Takkyubin Compact", Status: StatusActive},
			{ID: 3, CategoryID: 1, Name: "Takkyubin", Status: StatusActive},
			{ID: 4, CategoryID: 2, Name: "Yu-Packet", Status: StatusActive},
			{ID: 5, CategoryID: 2, Name: "Yu-Packet Post Mini", Status: StatusActive},
			{ID: 6, CategoryID: 2, Name: "Yu-Packet Post", Status: StatusActive},
			{ID: 7, CategoryID: 2, Name: "Yu-Packet Plus", Status: StatusActive},
			{ID: 8, CategoryID: 2, Name: "Yu-Pack", Status: StatusActive},
		},
		Options: []FixedOption{
			{
				ID: 1, ServiceID: 1, Name: "Neko-Pos",
				TotalPrice: 210, BasePrice: intp(210), PackagingPrice: intp(0),
				PackagingDetails: strp("up to 3cm thick, mailbox drop-off"),
				MaxWeightKg:      fp(1.0),
				MaxLengthCm:      fp(31.2), MaxWidthCm: fp(22.8), MaxThicknessCm: fp(3.0),
				MinLengthCm: fp(23.0), MinWidthCm: fp(11.5),
				SortOrder: 1, Status: StatusActive,
			},
			{
				ID: 2, ServiceID: 2, Name: "Takkyubin Compact (Thin Box)",
				TotalPrice: 520, BasePrice: intp(450), PackagingPrice: intp(70),
				PackagingName:            strp("dedicated thin box"),
				PackagingDetails:         strp("dedicated thin box required (24 x 33.2cm), sold at post offices and convenience stores"),
				RequiresSpecialPackaging: true,
				MaxLengthCm:              fp(24.0), MaxWidthCm: fp(33.2),
				SortOrder: 2, Status: StatusActive,
			},
			{
				ID: 3, ServiceID: 2, Name: "Takkyubin Compact (Box)",
				TotalPrice: 520, BasePrice: intp(450), PackagingPrice: intp(70),
				PackagingName:            strp("dedicated box"),
				PackagingDetails:         strp("dedicated box required (19.3 x 24.7 x 4.7cm), sold at post offices and convenience stores"),
				RequiresSpecialPackaging: true,
				MaxLengthCm:              fp(19.3), MaxWidthCm: fp(24.7), MaxHeightCm: fp(4.7),
				SortOrder: 3, Status: StatusActive,
			},
			{
				ID: 4, ServiceID: 4, Name: "Yu-Packet",
				TotalPrice: 230, BasePrice: intp(230), PackagingPrice: intp(0),
				PackagingDetails: strp("up to 3cm thick, three sides up to 60cm combined"),
				MaxWeightKg:      fp(1.0), MaxSizeCm: fp(60),
				MaxLengthCm: fp(34.0), MaxThicknessCm: fp(3.0),
				SortOrder: 4, Status: StatusActive,
			},
			{
				ID: 5, ServiceID: 5, Name: "Yu-Packet Post Mini",
				TotalPrice: 180, BasePrice: intp(160), PackagingPrice: intp(20),
				PackagingName:            strp("dedicated envelope"),
				PackagingDetails:         strp("dedicated envelope required, sold at post offices and Lawson"),
				RequiresSpecialPackaging: true,
				MaxWeightKg:              fp(2.0),
				MaxLengthCm:              fp(21.1), MaxWidthCm: fp(16.8),
				SortOrder: 5, Status: StatusActive,
			},
			{
				ID: 6, ServiceID: 6, Name: "Yu-Packet Post (Box)",
				TotalPrice: 280, BasePrice: intp(215), PackagingPrice: intp(65),
				PackagingName:            strp("dedicated box"),
				PackagingDetails:         strp("dedicated box required (32.7 x 22.8 x 3cm), sold at post offices, Lawson and Seria"),
				RequiresSpecialPackaging: true,
				MaxWeightKg:              fp(2.0), MaxSizeCm: fp(60),
				MaxLengthCm: fp(32.7), MaxWidthCm: fp(22.8), MaxThicknessCm: fp(3.0),
				SortOrder: 6, Status: StatusActive,
			},
			{
				ID: 7, ServiceID: 6, Name: "Yu-Packet Post (Sticker)",
				TotalPrice: 220, BasePrice: intp(215), PackagingPrice: intp(5),
				PackagingName:            strp("shipping sticker"),
				PackagingDetails:         strp("shipping sticker required (pack of 20 for 100 yen), sold at post offices, Lawson, Ito-Yokado and Daiso"),
				RequiresSpecialPackaging: true,
				MaxWeightKg:              fp(2.0), MaxSizeCm: fp(60),
				MaxLengthCm: fp(34.0), MaxThicknessCm: fp(3.0),
				MinLengthCm: fp(14.0), MinWidthCm: fp(9.0),
				SortOrder: 7, Status: StatusActive,
			},
			{
				ID: 8, ServiceID: 7, Name: "Yu-Packet Plus",
				TotalPrice: 520, BasePrice: intp(455), PackagingPrice: intp(65),
				PackagingName:            strp("dedicated box"),
				PackagingDetails:         strp("dedicated box required (24 x 17 x 7cm), sold at post offices"),
				RequiresSpecialPackaging: true,
				MaxWeightKg:              fp(2.0),
				MaxLengthCm:              fp(23.2), MaxWidthCm: fp(16.2), MaxHeightCm: fp(6.5),
				SortOrder: 8, Status: StatusActive,
			},
		},
		Tiers: []SizeTier{
			// Takkyubin ladder
			{ID: 1, ServiceID: 3, TierName: "Size 60", Price: 750, MaxWeightKg: fp(2.0), MaxSizeCm: fp(60)},
			{ID: 2, ServiceID: 3, TierName: "Size 80", Price: 850, MaxWeightKg: fp(5.0), MaxSizeCm: fp(80)},
			{ID: 3, ServiceID: 3, TierName: "Size 100", Price: 1050, MaxWeightKg: fp(10.0), MaxSizeCm: fp(100)},
			{ID: 4, ServiceID: 3, TierName: "Size 120", Price: 1200, MaxWeightKg: fp(15.0), MaxSizeCm: fp(120)},
			{ID: 5, ServiceID: 3, TierName: "Size 140", Price: 1450, MaxWeightKg: fp(20.0), MaxSizeCm: fp(140)},
			{ID: 6, ServiceID: 3, TierName: "Size 160", Price: 1700, MaxWeightKg: fp(25.0), MaxSizeCm: fp(160)},
			{ID: 7, ServiceID: 3, TierName: "Size 170", Price: 2100, MaxWeightKg: fp(30.0), MaxSizeCm: fp(170)},
			{ID: 8, ServiceID: 3, TierName: "Size 180", Price: 2100, MaxWeightKg: fp(30.0), MaxSizeCm: fp(180)},
			{ID: 9, ServiceID: 3, TierName: "Size 200", Price: 2500, MaxWeightKg: fp(30.0), MaxSizeCm: fp(200)},
			// Yu-Pack ladder
			{ID: 10, ServiceID: 8, TierName: "Size 60", Price: 770, MaxWeightKg: fp(25.0), MaxSizeCm: fp(60)},
			{ID: 11, ServiceID: 8, TierName: "Size 80", Price: 870, MaxWeightKg: fp(25.0), MaxSizeCm: fp(80)},
			{ID: 12, ServiceID: 8, TierName: "Size 100", Price: 1070, MaxWeightKg: fp(25.0), MaxSizeCm: fp(100)},
			{ID: 13, ServiceID: 8, TierName: "Size 120", Price: 1250, MaxWeightKg: fp(25.0), MaxSizeCm: fp(120)},
			{ID: 14, ServiceID: 8, TierName: "Size 140", Price: 1450, MaxWeightKg: fp(25.0), MaxSizeCm: fp(140)},
			{ID: 15, ServiceID: 8, TierName: "Size 160", Price: 1700, MaxWeightKg: fp(25.0), MaxSizeCm: fp(160)},
			{ID: 16, ServiceID: 8, TierName: "Size 170", Price: 1900, MaxWeightKg: fp(25.0), MaxSizeCm: fp(170)},
		},
	}
}

func fp(v float64) *float64 { return &v }

func intp(v int) *int { return &v }

func strp(s string) *string { return &s }
