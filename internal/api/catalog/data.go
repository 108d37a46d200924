package catalog

import "github.com/FACorreiaa/go-eje-planner/internal/types"

var itineraries = []types.Itinerary{
	{
		Duration:    3,
		Title:       "Escapada Express (Puente)",
		Description: "Ideal para salir madrugado de Bogotá y aprovechar al máximo.",
		Days: []types.DayPlan{
			{Day: 1, Title: "Ruta Bogotá - Eje", Activities: []string{"Salida 4:00 AM de Bogotá", "Desayuno en Ibagué", "Cruce Túnel de La Línea", "Llegada a Salento (Check-in)", "Atardecer en Calle Real"}},
			{Day: 2, Title: "Valle del Cocora", Activities: []string{"Manejar hasta Cocora", "Caminata Palmas de Cera", "Almuerzo Trucha", "Visita rápida a Filandia"}},
			{Day: 3, Title: "Termales y Regreso", Activities: []string{"Manejar a Termales Santa Rosa", "Baño matutino relajante", "Almuerzo en carretera", "Retorno a Bogotá (subiendo La Línea)"}},
		},
	},
	{
		Duration:    5,
		Title:       "Vuelta Completa en Carro",
		Description: "Recorrido circular conociendo los 3 departamentos.",
		Days: []types.DayPlan{
			{Day: 1, Title: "La Ruta del Café", Activities: []string{"Bogotá -> Armenia (7-8h)", "Instalación en Finca Hotel cerca al Parque del Café", "Descanso piscina"}},
			{Day: 2, Title: "Diversión y Cultura", Activities: []string{"Parque del Café (Todo el día)", "Noche en Montenegro o Armenia"}},
			{Day: 3, Title: "Pueblos con Encanto", Activities: []string{"Ruta: Armenia -> Salento", "Valle del Cocora", "Tarde en Filandia", "Noche en Pereira/Santa Rosa"}},
			{Day: 4, Title: "Naturaleza y Relax", Activities: []string{"Bioparque Ukumarí o Otún Quimbaya", "Termales de Santa Rosa en la noche"}},
			{Day: 5, Title: "Regreso por Letras", Activities: []string{"Subida a Manizales", "Desayuno mirando el Nevado", "Regreso a Bogotá por Alto de Letras (Paisajes únicos)"}},
		},
	},
}

var pointsOfInterest = []types.PointOfInterest{
	{ID: "1", Name: "Pereira", Category: types.CategoryCity, Lat: 4.8133, Lng: -75.6961, Description: "Capital de Risaralda. Tráfico moderado. Waze recomendado.", Contact: "Info vial #767"},
	{ID: "2", Name: "Armenia", Category: types.CategoryCity, Lat: 4.5350, Lng: -75.6757, Description: "Capital del Quindío. Vías excelentes hacia los parques.", Contact: "Info vial #767"},
	{ID: "3", Name: "Manizales", Category: types.CategoryCity, Lat: 5.0689, Lng: -75.5174, Description: "Ciudad de lomas empinadas. Cuidado con el embrague.", Contact: "Info vial #767"},
	{ID: "4", Name: "Salento", Category: types.CategoryTown, Lat: 4.6374, Lng: -75.5703, Description: "Ojo: Parqueo difícil los fines de semana. Llegar temprano.", Contact: "Parqueaderos públicos disp."},
	{ID: "5", Name: "Valle del Cocora", Category: types.CategoryNature, Lat: 4.6385, Lng: -75.4870, Description: "Vía estrecha desde Salento. Hay parqueaderos en la entrada.", Contact: "Parqueo: ~10k"},
	{ID: "6", Name: "Filandia", Category: types.CategoryTown, Lat: 4.6783, Lng: -75.6614, Description: "Vía en buen estado. Más fácil de parquear que Salento.", Contact: "Mirador a las afueras"},
	{ID: "7", Name: "Termales Santa Rosa", Category: types.CategoryNature, Lat: 4.8433, Lng: -75.5562, Description: "Acceso pavimentado pero vía de montaña.", Contact: "Parking gratis huéspedes"},
	{ID: "8", Name: "Parque del Café", Category: types.CategoryPark, Lat: 4.5413, Lng: -75.7709, Description: "Amplio parqueadero. Llegar a las 9am para aprovechar.", Contact: "Parking: ~5k"},
	{ID: "9", Name: "Alto de La Línea", Category: types.CategoryNature, Lat: 4.5, Lng: -75.5, Description: "Punto crítico de la ruta Bogotá-Eje. Túnel principal y descenso peligroso.", Contact: "Invías #767"},
	{ID: "10", Name: "Finca El Ocaso", Category: types.CategoryFarm, Lat: 4.6250, Lng: -75.5800, Description: "Vía destapada en el último tramo (transitable auto bajo suave).", Contact: "fincaelocaso.com"},
	{ID: "11", Name: "Hacienda Venecia", Category: types.CategoryFarm, Lat: 5.0300, Lng: -75.5500, Description: "Cerca a Manizales. Alojamiento y café.", Contact: "haciendavenecia.com"},
	{ID: "12", Name: "Bioparque Ukumarí", Category: types.CategoryPark, Lat: 4.8000, Lng: -75.7500, Description: "Cerca al aeropuerto Matecaña/Entrada Pereira.", Contact: "ukumari.org"},
	{ID: "13", Name: "Nevado del Ruiz", Category: types.CategoryNature, Lat: 4.8953, Lng: -75.3224, Description: "Acceso por Brisas. Vehículos altos recomendados para ciertas zonas.", Contact: "Parques Nacionales"},
}

var locations = []types.LocationInfo{
	{
		Name:        "Pereira (Risaralda)",
		Description: "Capital comercial. Acceso por variante La Romelia-El Pollo si vienes de Manizales o directo por Autopista del Café.",
		Activities:  []string{"Termales Santa Rosa", "Bioparque Ukumarí", "Santuario Otún Quimbaya"},
		Climate:     "Día: 26°C / Noche: 17°C",
	},
	{
		Name:        "Armenia (Quindío)",
		Description: "Punto de llegada directo bajando La Línea. Ideal para visitar el Parque del Café y Salento.",
		Activities:  []string{"Salento", "Filandia", "Parque del Café", "Jardín Botánico"},
		Climate:     "Día: 26°C / Noche: 17°C",
	},
	{
		Name:        "Manizales (Caldas)",
		Description: "Ciudad de puertas abiertas. Si tomas la ruta de Letras, llegarás directo aquí.",
		Activities:  []string{"Nevado del Ruiz", "Hacienda Venecia", "Catedral Basílica"},
		Climate:     "Día: 19°C / Noche: 12°C",
	},
}

var travelTimes = []types.TravelTime{
	{From: "Bogotá", To: "Armenia", Time: "7h - 8h"},
	{From: "Bogotá", To: "Pereira", Time: "8h"},
	{From: "Bogotá", To: "Manizales (Letras)", Time: "8.5h"},
	{From: "Ibagué", To: "Armenia", Time: "2h - 3h"},
	{From: "Pereira", To: "Armenia", Time: "1h"},
	{From: "Pereira", To: "Salento", Time: "1h"},
	{From: "Armenia", To: "Parque del Café", Time: "30m"},
	{From: "Salento", To: "Valle del Cocora", Time: "25m"},
}

// Marker colours as drawn by the map view. Farms use the default coffee tone.
var categoryColors = map[types.POICategory]string{
	types.CategoryCity:   "#2563eb",
	types.CategoryNature: "#16a34a",
	types.CategoryTown:   "#d97706",
	types.CategoryPark:   "#9333ea",
}

const (
	defaultMarkerColor = "#6d4c41"
	focusZoom          = 13
)
