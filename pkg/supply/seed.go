package supply

import "time"

// isoLayout matches the millisecond UTC timestamps the storefront expects.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Seed is the initial content of every collection.
type Seed struct {
	Suppliers             []Supplier
	Products              []Product
	Headquarters          []Headquarters
	Branches              []Branch
	Orders                []Order
	OrderDetails          []OrderDetail
	Deliveries            []Delivery
	OrderDetailDeliveries []OrderDetailDelivery
}

// SeedData returns freshly allocated seed collections. Order dates are set
// to now and delivery dates are scheduled relative to it.
func SeedData(now time.Time) Seed {
	now = now.UTC()
	quarter := func() *float64 { d := 0.25; return &d }
	day := 24 * time.Hour

	return Seed{
		Suppliers: []Supplier{
			{SupplierID: 1, Name: "PurrTech Innovations", Description: "Leading supplier of premium smart cat technology", ContactPerson: "Felix Whiskerton", Email: "felix@purrtech.co", Phone: "555-0101"},
			{SupplierID: 2, Name: "WhiskerWare Systems", Description: "Advanced feline-focused smart product supplier", ContactPerson: "Tabitha Pawson", Email: "tabitha@whiskerware.com", Phone: "555-0102"},
			{SupplierID: 3, Name: "CatNip Creations", Description: "Supplier of eco-friendly cat toys and accessories", ContactPerson: "Nina Nibbles", Email: "nina@catnip.com", Phone: "555-0103"},
		},
		Products: []Product{
			{ProductID: 1, SupplierID: 3, Name: "SmartFeeder One", Description: "This AI-powered feeder learns your cat's snack schedule based on nap cycles and mealtime habits. It detects overeating, undernapping, and auto-updates a Feline Health Repo.", Price: 129.99, SKU: "CAT-FEED-001", Unit: "piece", ImgName: "feeder.png", Discount: quarter()},
			{ProductID: 2, SupplierID: 3, Name: "AutoClean Litter Dome", Description: "A self-cleaning litter box that detects patterns in your cat's... commits. Sends you a health report and Slack alert if things look off.", Price: 199.99, SKU: "CAT-LITTER-001", Unit: "piece", ImgName: "litter-box.png", Discount: quarter()},
			{ProductID: 3, SupplierID: 2, Name: "CatFlix Entertainment Portal", Description: "On-demand laser shows, motion videos, and bird-watching streams - customized per cat using AI interest tracking. Think Netflix, but for felines.", Price: 89.99, SKU: "CAT-FLIX-001", Unit: "piece", ImgName: "catflix.png"},
			{ProductID: 4, SupplierID: 2, Name: "PawTrack Smart Collar", Description: "GPS and activity tracker with AI-powered mood detection based on tail position, purring frequency, and movement patterns. Syncs with your phone for walk stats and zoomie alerts.", Price: 79.99, SKU: "CAT-COLLAR-001", Unit: "piece", ImgName: "smart-collar.png"},
			{ProductID: 5, SupplierID: 1, Name: "SleepNest ThermoPod", Description: "A smart bed that adjusts its temperature, lighting, and white noise based on your cat's REM cycles. Auto-generates nap metrics in JSON.", Price: 149.99, SKU: "CAT-BED-001", Unit: "piece", ImgName: "sleep-nest.png"},
			{ProductID: 6, SupplierID: 1, Name: "ClawMate Auto Groomer", Description: "Your cat brushes itself. This AI station detects which areas need grooming, dispenses treats for patience, and logs grooming history to your pet portal.", Price: 119.99, SKU: "CAT-GROOM-001", Unit: "piece", ImgName: "auto-groomer.png"},
			{ProductID: 7, SupplierID: 3, Name: "Smart Fountain Flow+", Description: "This water fountain adjusts flow patterns based on time of day, cat hydration levels, and even playfulness. Uses facial recognition to distinguish multiple cats.", Price: 69.99, SKU: "CAT-FOUNTAIN-001", Unit: "piece", ImgName: "smart-fountain.png", Discount: quarter()},
			{ProductID: 8, SupplierID: 2, Name: "ScratchPad Pro", Description: "More than a scratcher - this one detects scratching habits, gamifies it with leaderboard stats for multi-cat homes, and awards digital badges.", Price: 59.99, SKU: "CAT-SCRATCH-001", Unit: "piece", ImgName: "scratch-pad.png"},
			{ProductID: 9, SupplierID: 2, Name: "ChirpCam Window Mount", Description: "Motion-activated smart cam that records wildlife outside the window and sends curated 'Birdflix' highlights to your cat's personal feed.", Price: 99.99, SKU: "CAT-CAM-001", Unit: "piece", ImgName: "chirp-cam.png"},
			{ProductID: 10, SupplierID: 3, Name: "SnackVault Puzzle Dispenser", Description: "Treat puzzle toy that evolves in difficulty with your cat's cleverness. AI engine auto-adjusts pathways and provides tips to the human if the cat cheats.", Price: 49.99, SKU: "CAT-SNACK-001", Unit: "piece", ImgName: "snack-vault.png", Discount: quarter()},
			{ProductID: 11, SupplierID: 1, Name: "DoorDash Pet Portal", Description: "Smart cat door with facial recognition and time-based access. Prevents midnight squirrel parties and tracks in/out commits to your dashboard.", Price: 159.99, SKU: "CAT-DOOR-001", Unit: "piece", ImgName: "door-dash.png"},
			{ProductID: 12, SupplierID: 2, Name: "ZoomieTracker AI Mat", Description: "A motion-sensing mat that detects zoomies, spins up chase lights, and logs agility bursts to a weekly health report. Yes, it graphs zoomies per hour.", Price: 79.99, SKU: "CAT-TRACKER-001", Unit: "piece", ImgName: "tracker-mat.png"},
		},
		Headquarters: []Headquarters{
			{HeadquartersID: 1, Name: "CatTech Global HQ", Description: "Feline tech innovations headquarters", Address: "123 Whisker Lane, Purrington District", ContactPerson: "Catherine Purrston", Email: "catherine@octocat.com", Phone: "555-0001"},
		},
		Branches: []Branch{
			{BranchID: 1, HeadquartersID: 1, Name: "Meowtown Branch", Description: "Main downtown cat tech showroom", Address: "456 Purrfect Plaza", ContactPerson: "Chloe Whiskers", Email: "cwhiskers@octocat.com", Phone: "555-0201"},
			{BranchID: 2, HeadquartersID: 1, Name: "Tabby Terrace Branch", Description: "Western district cat tech hub", Address: "789 Feline Avenue", ContactPerson: "Tom Pouncer", Email: "tpouncer@octocat.com", Phone: "555-0202"},
		},
		Orders: []Order{
			{OrderID: 1, BranchID: 1, OrderDate: now.Format(isoLayout), Name: "Q2 Feline Tech Refresh", Description: "Quarterly smart cat tech product refresh", Status: "pending"},
			{OrderID: 2, BranchID: 2, OrderDate: now.Format(isoLayout), Name: "Cat Enrichment Bundle", Description: "Monthly cat entertainment systems restock", Status: "processing"},
		},
		OrderDetails: []OrderDetail{
			{OrderDetailID: 1, OrderID: 1, ProductID: 2, Quantity: 5, UnitPrice: 199.99, Notes: "AutoClean Litter Domes for new cat café locations"},
			{OrderDetailID: 2, OrderID: 1, ProductID: 3, Quantity: 5, UnitPrice: 89.99, Notes: "CatFlix Entertainment Portals for waiting areas"},
			{OrderDetailID: 3, OrderID: 2, ProductID: 4, Quantity: 20, UnitPrice: 79.99, Notes: "PawTrack Smart Collars for adoption events"},
		},
		Deliveries: []Delivery{
			{DeliveryID: 1, SupplierID: 1, DeliveryDate: now.Add(7 * day).Format(isoLayout), Name: "PurrTech Smart Home Bundle", Description: "Premium cat tech products delivery for smart cat homes", Status: "pending"},
			{DeliveryID: 2, SupplierID: 2, DeliveryDate: now.Add(2 * day).Format(isoLayout), Name: "WhiskerWare Entertainment Package", Description: "Entertainment and tracking systems for feline companions", Status: "in-transit"},
		},
		OrderDetailDeliveries: []OrderDetailDelivery{
			{OrderDetailDeliveryID: 1, OrderDetailID: 1, DeliveryID: 1, Quantity: 5, Notes: "Delivery batch"},
			{OrderDetailDeliveryID: 2, OrderDetailID: 2, DeliveryID: 1, Quantity: 5, Notes: "Delivery batch"},
			{OrderDetailDeliveryID: 3, OrderDetailID: 3, DeliveryID: 2, Quantity: 20, Notes: "Delivery"},
		},
	}
}
