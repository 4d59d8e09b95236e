package domain

import "strings"

// DeliveryZone is the two-tier pricing classification. Any district name
// collapses to exactly one tier; the tier fully determines the delivery
// charge.
type DeliveryZone string

const (
	ZoneUnselected     DeliveryZone = ""
	ZoneInsideCapital  DeliveryZone = "inside_capital"
	ZoneOutsideCapital DeliveryZone = "outside_capital"
)

func (z DeliveryZone) Selected() bool {
	return z == ZoneInsideCapital || z == ZoneOutsideCapital
}

func (z DeliveryZone) String() string {
	return string(z)
}

// ZoneForDistrict reduces a district name to its pricing tier. Only the
// capital is inside; every other non-empty district is outside.
func ZoneForDistrict(district string) DeliveryZone {
	d := strings.TrimSpace(district)
	if d == "" {
		return ZoneUnselected
	}
	if strings.EqualFold(d, "Dhaka") {
		return ZoneInsideCapital
	}
	return ZoneOutsideCapital
}

// Districts is the closed list of deliverable districts, in the order the
// storefront presents them.
var Districts = []string{
	"Dhaka", "Faridpur", "Gazipur", "Gopalganj", "Jamalpur", "Kishoreganj",
	"Madaripur", "Manikganj", "Munshiganj", "Mymensingh", "Narayanganj", "Narsingdi",
	"Netrokona", "Rajbari", "Shariatpur", "Sherpur", "Tangail",
	"Bogra", "Joypurhat", "Naogaon", "Natore", "Nawabganj", "Pabna",
	"Rajshahi", "Sirajgonj",
	"Dinajpur", "Gaibandha", "Kurigram", "Lalmonirhat", "Nilphamari",
	"Panchagarh", "Rangpur", "Thakurgaon",
	"Barguna", "Barisal", "Bhola", "Jhalokati", "Patuakhali", "Pirojpur",
	"Bandarban", "Brahmanbaria", "Chandpur", "Chittagong", "Comilla",
	"Cox's Bazar", "Feni", "Khagrachari", "Lakshmipur", "Noakhali", "Rangamati",
	"Habiganj", "Maulvibazar", "Sunamganj", "Sylhet",
	"Bagerhat", "Chuadanga", "Jessore", "Jhenaidah", "Khulna",
	"Kushtia", "Magura", "Meherpur", "Narail",
}

var districtSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(Districts))
	for _, d := range Districts {
		s[strings.ToLower(d)] = struct{}{}
	}
	return s
}()

func IsValidDistrict(district string) bool {
	_, ok := districtSet[strings.ToLower(strings.TrimSpace(district))]
	return ok
}
