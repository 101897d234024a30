package config

// defaultUniverse is the built-in CAC 40 universe, used when the config file
// does not declare one. Tickers are Yahoo Finance symbols.
var defaultUniverse = []InstrumentConfig{
	{Ticker: "AIR.PA", Name: "Airbus", Sector: "Industrials"},
	{Ticker: "AI.PA", Name: "Air Liquide", Sector: "Materials"},
	{Ticker: "MT.AS", Name: "ArcelorMittal", Sector: "Materials"},
	{Ticker: "CS.PA", Name: "AXA", Sector: "Financials"},
	{Ticker: "BNP.PA", Name: "BNP Paribas", Sector: "Financials"},
	{Ticker: "EN.PA", Name: "Bouygues", Sector: "Industrials"},
	{Ticker: "CAP.PA", Name: "Capgemini", Sector: "Technology"},
	{Ticker: "CA.PA", Name: "Carrefour", Sector: "Consumer Staples"},
	{Ticker: "ACA.PA", Name: "Crédit Agricole", Sector: "Financials"},
	{Ticker: "BN.PA", Name: "Danone", Sector: "Consumer Staples"},
	{Ticker: "ENGI.PA", Name: "Engie", Sector: "Utilities"},
	{Ticker: "EL.PA", Name: "EssilorLuxottica", Sector: "Healthcare"},
	{Ticker: "RMS.PA", Name: "Hermès", Sector: "Consumer Discretionary"},
	{Ticker: "KER.PA", Name: "Kering", Sector: "Consumer Discretionary"},
	{Ticker: "OR.PA", Name: "L'Oréal", Sector: "Consumer Staples"},
	{Ticker: "LR.PA", Name: "Legrand", Sector: "Industrials"},
	{Ticker: "MC.PA", Name: "LVMH", Sector: "Consumer Discretionary"},
	{Ticker: "ML.PA", Name: "Michelin", Sector: "Consumer Discretionary"},
	{Ticker: "ORA.PA", Name: "Orange", Sector: "Telecom"},
	{Ticker: "RI.PA", Name: "Pernod Ricard", Sector: "Consumer Staples"},
	{Ticker: "PUB.PA", Name: "Publicis", Sector: "Consumer Discretionary"},
	{Ticker: "RNO.PA", Name: "Renault", Sector: "Consumer Discretionary"},
	{Ticker: "SAF.PA", Name: "Safran", Sector: "Industrials"},
	{Ticker: "SGO.PA", Name: "Saint-Gobain", Sector: "Industrials"},
	{Ticker: "SAN.PA", Name: "Sanofi", Sector: "Healthcare"},
	{Ticker: "SU.PA", Name: "Schneider Electric", Sector: "Industrials"},
	{Ticker: "GLE.PA", Name: "Société Générale", Sector: "Financials"},
	{Ticker: "STLAM.PA", Name: "Stellantis", Sector: "Consumer Discretionary"},
	{Ticker: "STMPA.PA", Name: "STMicroelectronics", Sector: "Technology"},
	{Ticker: "FP.PA", Name: "TotalEnergies", Sector: "Energy"},
	{Ticker: "URW.AS", Name: "Unibail-Rodamco-Westfield", Sector: "Real Estate"},
	{Ticker: "VIE.PA", Name: "Veolia", Sector: "Utilities"},
	{Ticker: "DG.PA", Name: "Vinci", Sector: "Industrials"},
	{Ticker: "VIV.PA", Name: "Vivendi", Sector: "Telecom"},
}
