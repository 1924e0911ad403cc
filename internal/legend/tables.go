package legend

import "github.com/gridlegend/gridlegend/internal/types"

// Category identifiers.
const (
	Hydropower       types.Category = "hydropower"
	Geothermal       types.Category = "geothermal"
	Bioenergy        types.Category = "bioenergy"
	Solar            types.Category = "solar"
	Wind             types.Category = "wind"
	PumpingUp        types.Category = "pumping_up"
	PumpingDown      types.Category = "pumping_down"
	BatteryCharge    types.Category = "battery_charge"
	BatteryGenerate  types.Category = "battery_generate"
	SolarCurtailment types.Category = "solar_curtailment"
	WindCurtailment  types.Category = "wind_curtailment"

	Nuclear       types.Category = "nuclear"
	Thermal       types.Category = "thermal"
	ThermalLNG    types.Category = "thermal_lng"
	ThermalCoal   types.Category = "thermal_coal"
	ThermalOil    types.Category = "thermal_oil"
	ThermalOthers types.Category = "thermal_others"
	Others        types.Category = "others"

	Demand    types.Category = "demand"
	SpotPrice types.Category = "spot_price"
)

// Region identifiers. "tohuku" is the id the dashboard data uses, keep it.
const (
	Japan    types.Region = "japan"
	Tokyo    types.Region = "tokyo"
	Hokkaido types.Region = "hokkaido"
	Tohuku   types.Region = "tohuku"
	Chubu    types.Region = "chubu"
	Hokuriku types.Region = "hokuriku"
	Kansai   types.Region = "kansai"
	Chugoku  types.Region = "chugoku"
	Shikoku  types.Region = "shikoku"
	Kyushu   types.Region = "kyushu"
)

// Axis label keys.
const (
	AxisPower = "axis_power"
	AxisPrice = "axis_price"
	AxisTime  = "axis_time"
	AxisDate  = "axis_date"
	AxisShare = "axis_share"
)

// FallbackColor is drawn for series that have no entry in the color table.
const FallbackColor types.Color = "#BBBBBB"

var renewables = []types.Category{
	Hydropower,
	Geothermal,
	Bioenergy,
	Solar,
	Wind,
	PumpingUp,
	PumpingDown,
	BatteryCharge,
	BatteryGenerate,
	SolarCurtailment,
	WindCurtailment,
}

// thermal is the aggregate series; the subtypes are listed as well.
var nonRenewables = []types.Category{
	Nuclear,
	Thermal,
	ThermalLNG,
	ThermalCoal,
	ThermalOil,
	ThermalOthers,
	Others,
}

var misc = []types.Category{
	Demand,
	SpotPrice,
}

var colors = map[types.Category]types.Color{
	Hydropower:       "blue",
	Geothermal:       "darkgray",
	Bioenergy:        "#009933", // green
	Solar:            "gold",
	Wind:             "#99CCFF", // light blue
	PumpingUp:        "#FFB6C1", // light pink
	PumpingDown:      "#FFB6C1",
	BatteryCharge:    "#DAB1DA", // light purple
	BatteryGenerate:  "#DAB1DA",
	SolarCurtailment: "#FFF3B0",
	WindCurtailment:  "#CCE5FF",
	Nuclear:          "#FF0000",
	ThermalLNG:       "#FFDBBB",
	ThermalCoal:      "#808080",
	ThermalOil:       "#996633", // brown
	ThermalOthers:    "#FFA500", // orange
	Thermal:          "#FFA500",
	Others:           "#36454F", // charcoal
	Demand:           "black",
	SpotPrice:        "#FF1493",
}

var regions = []types.Region{
	Japan,
	Tokyo,
	Hokkaido,
	Tohuku,
	Chubu,
	Hokuriku,
	Kansai,
	Chugoku,
	Shikoku,
	Kyushu,
}

var en = map[string]string{
	"hydropower":        "Hydropower",
	"geothermal":        "Geothermal",
	"bioenergy":         "Bioenergy",
	"solar":             "Solar",
	"wind":              "Wind",
	"pumping_up":        "Pumped Storage (Pumping)",
	"pumping_down":      "Pumped Storage (Generation)",
	"battery_charge":    "Battery (Charge)",
	"battery_generate":  "Battery (Discharge)",
	"solar_curtailment": "Solar Curtailment",
	"wind_curtailment":  "Wind Curtailment",
	"nuclear":           "Nuclear",
	"thermal":           "Thermal",
	"thermal_lng":       "Thermal (LNG)",
	"thermal_coal":      "Thermal (Coal)",
	"thermal_oil":       "Thermal (Oil)",
	"thermal_others":    "Thermal (Others)",
	"others":            "Others",
	"demand":            "Demand",
	"spot_price":        "Spot Price",

	"axis_power": "Power (MW)",
	"axis_price": "Price (JPY/kWh)",
	"axis_time":  "Time",
	"axis_date":  "Date",
	"axis_share": "Share (%)",

	"japan":    "Japan",
	"tokyo":    "Tokyo",
	"hokkaido": "Hokkaido",
	"tohuku":   "Tohoku",
	"chubu":    "Chubu",
	"hokuriku": "Hokuriku",
	"kansai":   "Kansai",
	"chugoku":  "Chugoku",
	"shikoku":  "Shikoku",
	"kyushu":   "Kyushu",
}

var jp = map[string]string{
	"hydropower":        "水力",
	"geothermal":        "地熱",
	"bioenergy":         "バイオマス",
	"solar":             "太陽光",
	"wind":              "風力",
	"pumping_up":        "揚水（動力）",
	"pumping_down":      "揚水（発電）",
	"battery_charge":    "蓄電池（充電）",
	"battery_generate":  "蓄電池（放電）",
	"solar_curtailment": "太陽光（出力制御）",
	"wind_curtailment":  "風力（出力制御）",
	"nuclear":           "原子力",
	"thermal":           "火力",
	"thermal_lng":       "火力（LNG）",
	"thermal_coal":      "火力（石炭）",
	"thermal_oil":       "火力（石油）",
	"thermal_others":    "火力（その他）",
	"others":            "その他",
	"demand":            "需要",
	"spot_price":        "スポット価格",

	"axis_power": "電力 (MW)",
	"axis_price": "価格 (円/kWh)",
	"axis_time":  "時刻",
	"axis_date":  "日付",
	"axis_share": "構成比 (%)",

	"japan":    "全国",
	"tokyo":    "東京",
	"hokkaido": "北海道",
	"tohuku":   "東北",
	"chubu":    "中部",
	"hokuriku": "北陸",
	"kansai":   "関西",
	"chugoku":  "中国",
	"shikoku":  "四国",
	"kyushu":   "九州",
}

var labels = map[types.Locale]map[string]string{
	types.LocaleEN: en,
	types.LocaleJP: jp,
}
