package distance

type coordinate struct {
	lat float64
	lon float64
}

// Центроиды городов, между которыми реально возим. Ключ - нормализованное имя.
var cityCentroids = map[string]coordinate{
	"mumbai":     {lat: 19.0760, lon: 72.8777},
	"delhi":      {lat: 28.7041, lon: 77.1025},
	"bengaluru":  {lat: 12.9716, lon: 77.5946},
	"hyderabad":  {lat: 17.3850, lon: 78.4867},
	"ahmedabad":  {lat: 23.0225, lon: 72.5714},
	"chennai":    {lat: 13.0827, lon: 80.2707},
	"kolkata":    {lat: 22.5726, lon: 88.3639},
	"surat":      {lat: 21.1702, lon: 72.8311},
	"pune":       {lat: 18.5204, lon: 73.8567},
	"jaipur":     {lat: 26.9124, lon: 75.7873},
	"lucknow":    {lat: 26.8467, lon: 80.9462},
	"kanpur":     {lat: 26.4499, lon: 80.3319},
	"nagpur":     {lat: 21.1458, lon: 79.0882},
	"indore":     {lat: 22.7196, lon: 75.8577},
	"bhopal":     {lat: 23.2599, lon: 77.4126},
	"patna":      {lat: 25.5941, lon: 85.1376},
	"vadodara":   {lat: 22.3072, lon: 73.1812},
	"ludhiana":   {lat: 30.9010, lon: 75.8573},
	"coimbatore": {lat: 11.0168, lon: 76.9558},
	"kochi":      {lat: 9.9312, lon: 76.2673},
	"guwahati":   {lat: 26.1445, lon: 91.7362},
	"chandigarh": {lat: 30.7333, lon: 76.7794},
	"raipur":     {lat: 21.2514, lon: 81.6296},
	"ranchi":     {lat: 23.3441, lon: 85.3096},
	"amritsar":   {lat: 31.6340, lon: 74.8723},
}
