package inventory

// SeedCatalog returns the fixed default catalog used when no persisted
// collection exists. Order matters: index 0 is the newest listing.
func SeedCatalog() []VehicleRecord {
	seed := []VehicleRecord{
		{ID: "seed-001", Brand: "Toyota", Model: "Corolla XEi", Year: 2023, Price: 142900, OldPrice: 149900, Km: 21000, Fuel: "Flex", Transmission: TransmissionAutomatic, Description: "Single owner, full dealer service history.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Leather seats", "Adaptive cruise control", "Rear camera"}, IsNew: true},
		{ID: "seed-002", Brand: "Honda", Model: "Civic Touring", Year: 2022, Price: 164900, Km: 34000, Fuel: "Gasoline", Transmission: TransmissionAutomatic, Description: "Turbo engine, premium sound system.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Sunroof", "Heated seats"}, IsNew: true},
		{ID: "seed-003", Brand: "Volkswagen", Model: "Golf GTI", Year: 2021, Price: 189900, OldPrice: 199000, Km: 41000, Fuel: "Gasoline", Transmission: TransmissionAutomatic, Description: "Sport suspension, original paint.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Paddle shifters", "Digital cockpit"}},
		{ID: "seed-004", Brand: "Chevrolet", Model: "Onix Premier", Year: 2023, Price: 94900, Km: 18000, Fuel: "Flex", Transmission: TransmissionAutomatic, Description: "Economic city car with full warranty.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Wireless CarPlay", "Keyless entry"}},
		{ID: "seed-005", Brand: "Hyundai", Model: "HB20 Platinum", Year: 2022, Price: 89900, Km: 28000, Fuel: "Flex", Transmission: TransmissionAutomatic, Description: "Low mileage, all services at the dealer.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Blind spot monitor", "Rear camera"}},
		{ID: "seed-006", Brand: "Fiat", Model: "Pulse Impetus", Year: 2023, Price: 109900, Km: 12000, Fuel: "Flex", Transmission: TransmissionAutomatic, Description: "Turbo 200, practically new.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Panoramic roof", "Full LED"}},
		{ID: "seed-007", Brand: "Jeep", Model: "Compass Limited", Year: 2021, Price: 159900, OldPrice: 169900, Km: 47000, Fuel: "Diesel", Transmission: TransmissionAutomatic, Description: "4x4 diesel, towing package.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"4x4", "Leather seats", "Navigation"}},
		{ID: "seed-008", Brand: "Renault", Model: "Kwid Intense", Year: 2022, Price: 62900, Km: 23000, Fuel: "Flex", Transmission: TransmissionManual, Description: "Ideal first car, very economic.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Multimedia center"}},
		{ID: "seed-009", Brand: "Ford", Model: "Ranger XLT", Year: 2020, Price: 179900, Km: 68000, Fuel: "Diesel", Transmission: TransmissionAutomatic, Description: "Work-ready pickup, revised suspension.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Tow hitch", "Bed liner"}},
		{ID: "seed-010", Brand: "Nissan", Model: "Kicks Exclusive", Year: 2022, Price: 112900, Km: 31000, Fuel: "Flex", Transmission: TransmissionAutomatic, Description: "Around View Monitor, single owner.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"360 camera", "Leather seats"}},
		{ID: "seed-011", Brand: "Toyota", Model: "Hilux SRX", Year: 2021, Price: 239900, Km: 52000, Fuel: "Diesel", Transmission: TransmissionAutomatic, Description: "4x4 diesel, no off-road use.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"4x4", "Roll bar"}},
		{ID: "seed-012", Brand: "Honda", Model: "HR-V EXL", Year: 2023, Price: 154900, Km: 9000, Fuel: "Flex", Transmission: TransmissionAutomatic, Description: "Still under factory warranty.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Honda Sensing", "Sunroof"}, IsNew: true},
		{ID: "seed-013", Brand: "Volkswagen", Model: "T-Cross Highline", Year: 2022, Price: 129900, Km: 26000, Fuel: "Flex", Transmission: TransmissionAutomatic, Description: "Top trim with ACC and park assist.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Park assist", "Digital cockpit"}},
		{ID: "seed-014", Brand: "Chevrolet", Model: "Tracker Premier", Year: 2021, Price: 119900, OldPrice: 124900, Km: 38000, Fuel: "Flex", Transmission: TransmissionAutomatic, Description: "Panoramic roof, Bose audio.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Panoramic roof", "Bose audio"}},
		{ID: "seed-015", Brand: "Hyundai", Model: "Creta Ultimate", Year: 2023, Price: 144900, Km: 15000, Fuel: "Flex", Transmission: TransmissionAutomatic, Description: "Ventilated seats, highway kilometers only.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Ventilated seats", "Navigation"}},
		{ID: "seed-016", Brand: "BMW", Model: "320i M Sport", Year: 2020, Price: 219900, Km: 55000, Fuel: "Gasoline", Transmission: TransmissionAutomatic, Description: "M Sport package, ceramic coating.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Sport seats", "Harman Kardon"}},
		{ID: "seed-017", Brand: "Mercedes-Benz", Model: "C 180 Avantgarde", Year: 2019, Price: 198900, Km: 62000, Fuel: "Gasoline", Transmission: TransmissionAutomatic, Description: "Impeccable interior, new tires.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Leather seats", "LED headlights"}},
		{ID: "seed-018", Brand: "Audi", Model: "Q3 Prestige", Year: 2021, Price: 209900, Km: 44000, Fuel: "Gasoline", Transmission: TransmissionAutomatic, Description: "Virtual cockpit, quattro drive.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"Quattro", "Virtual cockpit"}},
		{ID: "seed-019", Brand: "Fiat", Model: "Toro Volcano", Year: 2022, Price: 149900, Km: 29000, Fuel: "Diesel", Transmission: TransmissionAutomatic, Description: "Diesel 4x4, bed cover included.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"4x4", "Bed cover"}},
		{ID: "seed-020", Brand: "Peugeot", Model: "208 Griffe", Year: 2022, Price: 92900, Km: 24000, Fuel: "Flex", Transmission: TransmissionAutomatic, Description: "3D cockpit, single owner.", ImageURL: "/static/img/placeholder-car.svg", Features: []string{"3D cockpit", "Full LED"}},
	}
	// Hand out copies so callers can't mutate the canonical seed.
	out := make([]VehicleRecord, len(seed))
	copy(out, seed)
	return out
}
