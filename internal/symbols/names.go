package symbols

// aliases maps the loose form of common company names and shorthands to the
// canonical NSE symbol. The alias table wins over every other heuristic.
// Keys must be in looseKey form: upper-cased, punctuation collapsed to
// single spaces.
var aliases = map[string]string{
	"TCS":                      "TCS.NS",
	"TATA CONSULTANCY":         "TCS.NS",
	"TATA CONSULTANCY SERVICES": "TCS.NS",
	"INFOSYS":                  "INFY.NS",
	"INFY":                     "INFY.NS",
	"RELIANCE":                 "RELIANCE.NS",
	"RELIANCE INDUSTRIES":      "RELIANCE.NS",
	"HDFC BANK":                "HDFCBANK.NS",
	"HDFCBANK":                 "HDFCBANK.NS",
	"ICICI BANK":               "ICICIBANK.NS",
	"ICICIBANK":                "ICICIBANK.NS",
	"ITC":                      "ITC.NS",
	"ITC LIMITED":              "ITC.NS",
	"SBI":                      "SBIN.NS",
	"STATE BANK":               "SBIN.NS",
	"STATE BANK OF INDIA":      "SBIN.NS",
	"KOTAK":                    "KOTAKBANK.NS",
	"KOTAK BANK":               "KOTAKBANK.NS",
	"BHARTI AIRTEL":            "BHARTIARTL.NS",
	"AIRTEL":                   "BHARTIARTL.NS",
	"LARSEN":                   "LT.NS",
	"L T":                      "LT.NS",
	"LARSEN TOUBRO":            "LT.NS",
	"ASTRAL":                   "ASTRAL.NS",
	"ASTRAL LIMITED":           "ASTRAL.NS",
	"LAURUS LABS":              "LAURUSLABS.NS",
	"LAURUSLABS":               "LAURUSLABS.NS",
	"WIPRO":                    "WIPRO.NS",
	"MARUTI":                   "MARUTI.NS",
	"MARUTI SUZUKI":            "MARUTI.NS",
	"ASIAN PAINTS":             "ASIANPAINT.NS",
	"ASIANPAINT":               "ASIANPAINT.NS",
	"TITAN":                    "TITAN.NS",
	"HINDUSTAN UNILEVER":       "HINDUNILVR.NS",
	"HUL":                      "HINDUNILVR.NS",
	"TATA MOTORS":              "TATAMOTORS.NS",
	"TATA STEEL":               "TATASTEEL.NS",
	"AXIS BANK":                "AXISBANK.NS",
	"BAJAJ FINANCE":            "BAJFINANCE.NS",
	"HCL":                      "HCLTECH.NS",
	"HCL TECH":                 "HCLTECH.NS",
	"HCL TECHNOLOGIES":         "HCLTECH.NS",
	"TECH MAHINDRA":            "TECHM.NS",
	"SUN PHARMA":               "SUNPHARMA.NS",
	"ULTRATECH":                "ULTRACEMCO.NS",
	"ULTRATECH CEMENT":         "ULTRACEMCO.NS",
	"NESTLE":                   "NESTLEIND.NS",
	"NESTLE INDIA":             "NESTLEIND.NS",
	"ADANI ENTERPRISES":        "ADANIENT.NS",
	"DMART":                    "DMART.NS",
	"AVENUE SUPERMARTS":        "DMART.NS",
	"M M":                      "M&M.NS",
	"MAHINDRA":                 "M&M.NS",
	"MAHINDRA MAHINDRA":        "M&M.NS",
}

// nseTickers is the set of bare tickers known to trade on the NSE; these get
// the domestic market suffix appended during normalization.
var nseTickers = map[string]struct{}{
	"TCS":        {},
	"INFY":       {},
	"RELIANCE":   {},
	"HDFCBANK":   {},
	"ICICIBANK":  {},
	"ITC":        {},
	"SBIN":       {},
	"KOTAKBANK":  {},
	"BHARTIARTL": {},
	"LT":         {},
	"ASTRAL":     {},
	"LAURUSLABS": {},
	"WIPRO":      {},
	"MARUTI":     {},
	"ASIANPAINT": {},
	"TITAN":      {},
	"HINDUNILVR": {},
	"TATAMOTORS": {},
	"TATASTEEL":  {},
	"AXISBANK":   {},
	"BAJFINANCE": {},
	"HCLTECH":    {},
	"TECHM":      {},
	"SUNPHARMA":  {},
	"NTPC":       {},
	"ONGC":       {},
	"POWERGRID":  {},
	"ULTRACEMCO": {},
	"NESTLEIND":  {},
	"ADANIENT":   {},
	"DMART":      {},
	"COALINDIA":  {},
	"TATAPOWER":  {},
	"JSWSTEEL":   {},
	"M&M":        {},
	"BAJAJFINSV": {},
	"INDUSINDBK": {},
	"GRASIM":     {},
	"CIPLA":      {},
	"DRREDDY":    {},
	"DIVISLAB":   {},
	"EICHERMOT":  {},
	"HEROMOTOCO": {},
	"BRITANNIA":  {},
	"SHREECEM":   {},
	"HINDALCO":   {},
	"VEDL":       {},
	"ZOMATO":     {},
	"PAYTM":      {},
	"IRCTC":      {},
}

// displayNames maps canonical symbols to human-readable company names.
// Regenerated onto each holding during refresh.
var displayNames = map[string]string{
	"TCS.NS":        "Tata Consultancy Services",
	"INFY.NS":       "Infosys",
	"RELIANCE.NS":   "Reliance Industries",
	"HDFCBANK.NS":   "HDFC Bank",
	"ICICIBANK.NS":  "ICICI Bank",
	"ITC.NS":        "ITC Limited",
	"SBIN.NS":       "State Bank of India",
	"KOTAKBANK.NS":  "Kotak Mahindra Bank",
	"BHARTIARTL.NS": "Bharti Airtel",
	"LT.NS":         "Larsen & Toubro",
	"ASTRAL.NS":     "Astral Limited",
	"LAURUSLABS.NS": "Laurus Labs",
	"WIPRO.NS":      "Wipro",
	"MARUTI.NS":     "Maruti Suzuki",
	"ASIANPAINT.NS": "Asian Paints",
	"TITAN.NS":      "Titan Company",
	"HINDUNILVR.NS": "Hindustan Unilever",
	"TATAMOTORS.NS": "Tata Motors",
	"TATASTEEL.NS":  "Tata Steel",
	"AXISBANK.NS":   "Axis Bank",
	"BAJFINANCE.NS": "Bajaj Finance",
	"HCLTECH.NS":    "HCL Technologies",
	"TECHM.NS":      "Tech Mahindra",
	"SUNPHARMA.NS":  "Sun Pharmaceutical",
	"NTPC.NS":       "NTPC",
	"ONGC.NS":       "Oil and Natural Gas Corporation",
	"POWERGRID.NS":  "Power Grid Corporation",
	"ULTRACEMCO.NS": "UltraTech Cement",
	"NESTLEIND.NS":  "Nestle India",
	"ADANIENT.NS":   "Adani Enterprises",
	"DMART.NS":      "Avenue Supermarts",
	"COALINDIA.NS":  "Coal India",
	"TATAPOWER.NS":  "Tata Power",
	"JSWSTEEL.NS":   "JSW Steel",
	"BAJAJFINSV.NS": "Bajaj Finserv",
	"INDUSINDBK.NS": "IndusInd Bank",
	"GRASIM.NS":     "Grasim Industries",
	"CIPLA.NS":      "Cipla",
	"DRREDDY.NS":    "Dr. Reddy's Laboratories",
	"DIVISLAB.NS":   "Divi's Laboratories",
	"EICHERMOT.NS":  "Eicher Motors",
	"HEROMOTOCO.NS": "Hero MotoCorp",
	"BRITANNIA.NS":  "Britannia Industries",
	"SHREECEM.NS":   "Shree Cement",
	"HINDALCO.NS":   "Hindalco Industries",
	"VEDL.NS":       "Vedanta",
	"M&M.NS":        "Mahindra & Mahindra",
	"ZOMATO.NS":     "Zomato",
	"PAYTM.NS":      "One97 Communications",
	"IRCTC.NS":      "Indian Railway Catering and Tourism",
}
