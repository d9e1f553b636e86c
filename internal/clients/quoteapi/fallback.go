package quoteapi

// defaultPrices is the static last-resort price table, used when a symbol
// has never been fetched successfully and the remote service is down.
// Values are indicative, not market data.
var defaultPrices = map[string]float64{
	"TCS.NS":        3500.00,
	"INFY.NS":       1450.00,
	"RELIANCE.NS":   2400.00,
	"HDFCBANK.NS":   1600.00,
	"ICICIBANK.NS":  950.00,
	"ITC.NS":        440.00,
	"SBIN.NS":       590.00,
	"KOTAKBANK.NS":  1750.00,
	"BHARTIARTL.NS": 900.00,
	"LT.NS":         3300.00,
	"ASTRAL.NS":     1900.00,
	"LAURUSLABS.NS": 400.00,
	"WIPRO.NS":      420.00,
	"MARUTI.NS":     10500.00,
	"ASIANPAINT.NS": 3200.00,
	"TITAN.NS":      3400.00,
	"HINDUNILVR.NS": 2500.00,
	"TATAMOTORS.NS": 650.00,
	"TATASTEEL.NS":  120.00,
	"AXISBANK.NS":   1000.00,
	"BAJFINANCE.NS": 7200.00,
	"HCLTECH.NS":    1250.00,
	"TECHM.NS":      1200.00,
	"SUNPHARMA.NS":  1100.00,
	"NTPC.NS":       240.00,
	"ONGC.NS":       180.00,
	"POWERGRID.NS":  230.00,
	"ULTRACEMCO.NS": 8400.00,
	"NESTLEIND.NS":  24000.00,
	"ADANIENT.NS":   2400.00,
	"DMART.NS":      3700.00,
	"COALINDIA.NS":  230.00,
	"TATAPOWER.NS":  220.00,
	"JSWSTEEL.NS":   780.00,
	"M&M.NS":        1500.00,
	"BAJAJFINSV.NS": 1550.00,
	"INDUSINDBK.NS": 1400.00,
	"GRASIM.NS":     1800.00,
	"CIPLA.NS":      1150.00,
	"DRREDDY.NS":    5500.00,
	"DIVISLAB.NS":   3600.00,
	"EICHERMOT.NS":  3400.00,
	"HEROMOTOCO.NS": 3000.00,
	"BRITANNIA.NS":  4600.00,
	"SHREECEM.NS":   26000.00,
	"HINDALCO.NS":   480.00,
	"VEDL.NS":       230.00,
	"ZOMATO.NS":     95.00,
	"PAYTM.NS":      650.00,
	"IRCTC.NS":      680.00,
}
