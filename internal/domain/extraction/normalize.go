// Package extraction normalizes the document-extraction webhook's loosely
// shaped JSON into a canonical ShipmentForm. Accepted field spellings live in
// ordered synonym tables; parsing never fails, missing fields come back empty.
package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"easydrive_booking/internal/domain/entities"
	"easydrive_booking/internal/domain/pricing"
)

// Synonym tables, in priority order. The first spelling that yields a
// non-empty value wins.
var (
	dropoffSectionKeys  = []string{"dropoff_location", "drop_off_location", "dropoff", "delivery_location", "deliveryLocation", "destination"}
	dropoffAddressKeys  = []string{"dropoff_address", "dropoffAddress", "destination_address", "destinationAddress", "delivery_address", "deliveryAddress"}
	dropoffCityKeys     = []string{"dropoff_city", "dropoffCity", "destination_city", "destinationCity", "delivery_city", "deliveryCity"}
	dropoffLatKeys      = []string{"dropoff_lat", "dropoffLat"}
	dropoffLngKeys      = []string{"dropoff_lng", "dropoffLng"}
	rawTextKeys         = []string{"text", "raw_text", "rawtext", "document_text", "documenttext", "ocr_text", "ocrtext", "extracted_text", "extractedtext"}
	serviceTypeKeys     = []string{"service_type", "servicetype"}
	odometerKeys        = []string{"odometer_km", "odometer", "odometerkm", "mileage"}
	exteriorColorKeys   = []string{"exterior_color", "color", "exteriorcolor"}
	yearKeys            = []string{"year", "vehicle_year", "vehicleyear"}
	sellingNameKeys     = []string{"selling_dealership_name", "sellingdealershipname", "selling_dealership", "sellingdealership", "seller", "seller_name"}
	sellingPhoneKeys    = []string{"selling_dealership_phone", "sellingdealershipphone", "seller_phone", "sellerphone", "selling_phone"}
	sellingAddressKeys  = []string{"selling_dealership_address", "sellingdealershipaddress", "seller_address", "selleraddress"}
	buyingNameKeys      = []string{"buying_dealership_name", "buyingdealershipname", "buying_dealership", "buyingdealership", "buyer", "buyer_name"}
	buyingPhoneKeys     = []string{"buying_dealership_phone", "buyingdealershipphone", "buyer_phone", "buyerphone"}
	buyingContactKeys   = []string{"contact_name", "contactname", "buyer_contact_name", "buyercontactname", "buyer_contact"}
	pickupNameKeys      = []string{"pickup_location_name", "pickuplocationname", "pickup_name", "pickupname"}
	pickupAddressKeys   = []string{"pickup_location_address", "pickuplocationaddress", "pickup_address", "pickupaddress"}
	pickupPhoneKeys     = []string{"pickup_location_phone", "pickuplocationphone", "pickup_phone", "pickupphone"}
	transactionIDKeys   = []string{"transaction_id", "transactionid", "transaction", "transaction_number", "transactionnumber"}
	releaseFormKeys     = []string{"release_form_number", "releaseformnumber", "release_form", "releaseform", "release_form_no", "releaseformno"}
	releaseDateKeys     = []string{"release_date", "releasedate"}
	arrivalDateKeys     = []string{"arrival_date", "arrivaldate"}
	releasedByKeys      = []string{"released_by_name", "releasedbyname", "releasedby"}
	releasedToKeys      = []string{"released_to_name", "releasedtoname", "releasedto"}
)

// UnwrapOutput accepts either the bare extraction record or a one-element
// array whose first element wraps the record under an "output" key, merging
// output fields over wrapper fields when both are present.
func UnwrapOutput(data any) map[string]any {
	wrapper, ok := asRecord(data)
	if !ok {
		if arr, isArr := data.([]any); isArr && len(arr) > 0 {
			wrapper, ok = asRecord(arr[0])
		}
		if !ok {
			return nil
		}
	}
	output, ok := asRecord(wrapper["output"])
	if !ok {
		return wrapper
	}
	merged := make(map[string]any, len(wrapper)+len(output))
	for k, v := range wrapper {
		merged[k] = v
	}
	for k, v := range output {
		merged[k] = v
	}
	delete(merged, "output")
	return merged
}

// Normalize converts an unwrapped extraction record into a ShipmentForm.
// Returns nil when the record is empty.
func Normalize(record map[string]any) *entities.ShipmentForm {
	if len(record) == 0 {
		return nil
	}

	rawText := pickFirst(loose(record, rawTextKeys...))

	service, _ := asRecord(record["service"])
	transaction, _ := asRecord(record["transaction"])
	vehicle, _ := asRecord(record["vehicle"])
	selling, _ := asRecord(record["selling_dealership"])
	buying, _ := asRecord(record["buying_dealership"])
	pickup, _ := asRecord(record["pickup_location"])
	auth, _ := asRecord(record["authorization"])

	serviceType := entities.ServiceTypePickup
	rawServiceType := pickFirst(
		loose(record, serviceTypeKeys...),
		loose(service, serviceTypeKeys...),
		loose(transaction, serviceTypeKeys...),
	)
	if strings.Contains(strings.ToLower(rawServiceType), "deliver") {
		serviceType = entities.ServiceTypeDelivery
	}

	dropoff := normalizeDropoff(record)

	form := &entities.ShipmentForm{
		Service: entities.ShipmentService{
			ServiceType: serviceType,
			VehicleType: entities.VehicleTypeStandard,
		},
		Vehicle: entities.ShipmentVehicle{
			VIN:           pickFirst(vehicle["vin"], loose(record, "vin")),
			Year:          normalizeYear(pickFirst(loose(vehicle, yearKeys...), loose(record, yearKeys...)), rawText),
			Make:          pickFirst(vehicle["make"], loose(record, "make")),
			Model:         pickFirst(vehicle["model"], loose(record, "model")),
			Transmission:  pickFirst(vehicle["transmission"], loose(record, "transmission")),
			OdometerKm:    normalizeOdometer(pickFirst(loose(vehicle, odometerKeys...), loose(record, odometerKeys...)), rawText),
			ExteriorColor: pickFirst(loose(vehicle, exteriorColorKeys...), loose(record, exteriorColorKeys...)),
		},
		SellingDealership: entities.DealershipParty{
			Name:    pickFirst(selling["name"], loose(record, sellingNameKeys...)),
			Phone:   pickFirst(selling["phone"], loose(record, sellingPhoneKeys...)),
			Address: pickFirst(selling["address"], loose(record, sellingAddressKeys...), pickup["address"]),
		},
		BuyingDealership: entities.DealershipParty{
			Name:        pickFirst(buying["name"], loose(record, buyingNameKeys...)),
			Phone:       pickFirst(buying["phone"], loose(record, buyingPhoneKeys...)),
			ContactName: pickFirst(buying["contact_name"], loose(record, buyingContactKeys...)),
		},
		PickupLocation: entities.ShipmentPlace{
			Name:    pickFirst(pickup["name"], loose(record, pickupNameKeys...)),
			Address: pickFirst(pickup["address"], loose(record, pickupAddressKeys...)),
			Phone:   pickFirst(pickup["phone"], loose(record, pickupPhoneKeys...), selling["phone"]),
		},
		DropoffLocation: dropoff,
		Transaction: entities.ShipmentTxn{
			TransactionID:     pickFirst(transaction["transaction_id"], loose(record, transactionIDKeys...)),
			ReleaseFormNumber: pickFirst(transaction["release_form_number"], loose(record, releaseFormKeys...)),
			ReleaseDate:       pickFirst(transaction["release_date"], loose(record, releaseDateKeys...)),
			ArrivalDate:       pickFirst(transaction["arrival_date"], loose(record, arrivalDateKeys...)),
		},
		Authorization: entities.ShipmentAuth{
			ReleasedByName: pickFirst(auth["released_by_name"], loose(record, releasedByKeys...)),
			ReleasedToName: pickFirst(auth["released_to_name"], loose(record, releasedToKeys...)),
		},
	}
	return form
}

// normalizeDropoff walks the drop-off section synonyms. A section may be a
// nested record or a bare address string; coordinates travel with whichever
// section supplied them.
func normalizeDropoff(record map[string]any) entities.DropoffPlace {
	var addrCandidates, cityCandidates, nameCandidates, phoneCandidates []any
	var latCandidates, lngCandidates []any

	for _, key := range dropoffSectionKeys {
		v, ok := record[key]
		if !ok {
			continue
		}
		if sec, isRec := asRecord(v); isRec {
			addrCandidates = append(addrCandidates, sec["address"], sec["full_address"])
			cityCandidates = append(cityCandidates, sec["city"])
			nameCandidates = append(nameCandidates, sec["name"])
			phoneCandidates = append(phoneCandidates, sec["phone"])
			latCandidates = append(latCandidates, sec["lat"])
			lngCandidates = append(lngCandidates, sec["lng"])
			continue
		}
		if s, isStr := v.(string); isStr {
			addrCandidates = append(addrCandidates, s)
		}
	}
	for _, key := range dropoffAddressKeys {
		addrCandidates = append(addrCandidates, record[key])
	}
	for _, key := range dropoffCityKeys {
		cityCandidates = append(cityCandidates, record[key])
	}
	for _, key := range dropoffLatKeys {
		latCandidates = append(latCandidates, record[key])
	}
	for _, key := range dropoffLngKeys {
		lngCandidates = append(lngCandidates, record[key])
	}

	address := pickFirst(addrCandidates...)
	city := pickFirst(cityCandidates...)
	if address == "" {
		address = city
	}
	name := pickFirst(nameCandidates...)

	place := entities.DropoffPlace{
		Name:    name,
		Phone:   pickFirst(phoneCandidates...),
		Address: address,
		Lat:     numericString(firstPresent(latCandidates)),
		Lng:     numericString(firstPresent(lngCandidates)),
	}

	// Infer the service area from the address text, then from the city.
	if m := pricing.ForAddress(strings.TrimSpace(address+" "+name), nil); m != nil {
		place.ServiceArea = m.Region
	} else if m := pricing.ForServiceArea(strings.TrimSpace(city), nil); m != nil {
		place.ServiceArea = m.Region
	}
	return place
}

var (
	yearPattern         = regexp.MustCompile(`(19\d{2}|20\d{2})`)
	yearFromTextPattern = regexp.MustCompile(`(?i)\bYear\b\s*[:-]?\s*(19\d{2}|20\d{2})`)
	odometerPattern     = regexp.MustCompile(`(?i)([0-9][0-9,\s.]*)\s*km`)
	odometerTextPattern = regexp.MustCompile(`(?i)\bOdometer\b\s*[:-]?\s*([0-9][0-9,\s.]*)\s*km\b`)
	nonNumericPattern   = regexp.MustCompile(`[^0-9.]`)
)

func normalizeYear(raw, fallbackText string) string {
	if raw != "" {
		if m := yearPattern.FindString(raw); m != "" {
			return m
		}
		return raw
	}
	if m := yearFromTextPattern.FindStringSubmatch(fallbackText); len(m) == 2 {
		return m[1]
	}
	return ""
}

func normalizeOdometer(raw, fallbackText string) string {
	if raw != "" {
		numeric := raw
		if m := odometerPattern.FindStringSubmatch(raw); len(m) == 2 {
			numeric = m[1]
		}
		return nonNumericPattern.ReplaceAllString(numeric, "")
	}
	if m := odometerTextPattern.FindStringSubmatch(fallbackText); len(m) == 2 {
		return nonNumericPattern.ReplaceAllString(m[1], "")
	}
	return ""
}

func asRecord(v any) (map[string]any, bool) {
	rec, ok := v.(map[string]any)
	return rec, ok && rec != nil
}

// loose walks the wanted spellings in order and returns the first record
// value whose key, lowercased and stripped of non-alphanumerics, matches and
// whose value is non-empty. An empty value under a higher-priority spelling
// never shadows a populated lower-priority one.
func loose(record map[string]any, keys ...string) any {
	if record == nil {
		return nil
	}
	for _, k := range keys {
		w := looseKey(k)
		for existing, v := range record {
			if looseKey(existing) != w {
				continue
			}
			if strings.TrimSpace(readString(v)) != "" {
				return v
			}
		}
	}
	return nil
}

func looseKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// readString coerces loose values to text: strings and finite numbers pass
// through, records are probed for common wrapper keys.
func readString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case map[string]any:
		for _, key := range []string{"value", "text", "raw", "result", "km", "year"} {
			if s := readString(t[key]); s != "" {
				return s
			}
		}
	}
	return ""
}

func pickFirst(values ...any) string {
	for _, v := range values {
		if s := strings.TrimSpace(readString(v)); s != "" {
			return s
		}
	}
	return ""
}

func firstPresent(values []any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func numericString(v any) string {
	s := strings.TrimSpace(readString(v))
	if s == "" {
		return ""
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return ""
	}
	return s
}
