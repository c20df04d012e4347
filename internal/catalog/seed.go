package catalog

import "github.com/talkincode/latencyglobe/internal/domain"

// Seed topology data. Coordinates are real deployment sites; server counts
// are representative figures for the demonstration view.

var seedExchanges = []domain.Exchange{
	// North America
	{ID: "coinbase-us", Name: "Coinbase Pro", CloudProvider: domain.ProviderAWS, Region: "us-west-1", ServerCount: 15,
		Location: domain.Location{Lat: 37.7749, Lng: -122.4194, City: "San Francisco", Country: "USA"}},
	{ID: "kraken-us", Name: "Kraken USA", CloudProvider: domain.ProviderAWS, Region: "us-east-1", ServerCount: 12,
		Location: domain.Location{Lat: 40.7128, Lng: -74.006, City: "New York", Country: "USA"}},
	{ID: "gemini-us", Name: "Gemini", CloudProvider: domain.ProviderAWS, Region: "us-east-1", ServerCount: 10,
		Location: domain.Location{Lat: 40.7128, Lng: -74.006, City: "New York", Country: "USA"}},
	{ID: "bittrex-us", Name: "Bittrex", CloudProvider: domain.ProviderAzure, Region: "westus2", ServerCount: 8,
		Location: domain.Location{Lat: 47.6062, Lng: -122.3321, City: "Seattle", Country: "USA"}},
	{ID: "coinsquare-ca", Name: "Coinsquare", CloudProvider: domain.ProviderAWS, Region: "ca-central-1", ServerCount: 6,
		Location: domain.Location{Lat: 43.6532, Lng: -79.3832, City: "Toronto", Country: "Canada"}},
	// Europe
	{ID: "binance-malta", Name: "Binance", CloudProvider: domain.ProviderAWS, Region: "eu-south-1", ServerCount: 25,
		Location: domain.Location{Lat: 35.9375, Lng: 14.3754, City: "Valletta", Country: "Malta"}},
	{ID: "kraken-uk", Name: "Kraken London", CloudProvider: domain.ProviderGCP, Region: "europe-west2", ServerCount: 14,
		Location: domain.Location{Lat: 51.5074, Lng: -0.1278, City: "London", Country: "UK"}},
	{ID: "bitstamp-uk", Name: "Bitstamp", CloudProvider: domain.ProviderAWS, Region: "eu-west-2", ServerCount: 10,
		Location: domain.Location{Lat: 51.5074, Lng: -0.1278, City: "London", Country: "UK"}},
	{ID: "bitfinex-ch", Name: "Bitfinex", CloudProvider: domain.ProviderAzure, Region: "switzerlandnorth", ServerCount: 8,
		Location: domain.Location{Lat: 47.3769, Lng: 8.5417, City: "Zurich", Country: "Switzerland"}},
	{ID: "bitpanda-at", Name: "Bitpanda", CloudProvider: domain.ProviderAWS, Region: "eu-central-1", ServerCount: 7,
		Location: domain.Location{Lat: 48.2082, Lng: 16.3738, City: "Vienna", Country: "Austria"}},
	{ID: "coinbase-de", Name: "Coinbase Germany", CloudProvider: domain.ProviderAWS, Region: "eu-central-1", ServerCount: 9,
		Location: domain.Location{Lat: 52.52, Lng: 13.405, City: "Berlin", Country: "Germany"}},
	// Asia-Pacific
	{ID: "binance-jp", Name: "Binance Japan", CloudProvider: domain.ProviderAWS, Region: "ap-northeast-1", ServerCount: 18,
		Location: domain.Location{Lat: 35.6762, Lng: 139.6503, City: "Tokyo", Country: "Japan"}},
	{ID: "okx-sg", Name: "OKX Singapore", CloudProvider: domain.ProviderAWS, Region: "ap-southeast-1", ServerCount: 16,
		Location: domain.Location{Lat: 1.3521, Lng: 103.8198, City: "Singapore", Country: "Singapore"}},
	{ID: "bybit-sg", Name: "Bybit Singapore", CloudProvider: domain.ProviderGCP, Region: "asia-southeast1", ServerCount: 14,
		Location: domain.Location{Lat: 1.3521, Lng: 103.8198, City: "Singapore", Country: "Singapore"}},
	{ID: "huobi-sg", Name: "Huobi Singapore", CloudProvider: domain.ProviderAzure, Region: "southeastasia", ServerCount: 12,
		Location: domain.Location{Lat: 1.3521, Lng: 103.8198, City: "Singapore", Country: "Singapore"}},
	{ID: "bitflyer-jp", Name: "bitFlyer", CloudProvider: domain.ProviderAWS, Region: "ap-northeast-1", ServerCount: 10,
		Location: domain.Location{Lat: 35.6762, Lng: 139.6503, City: "Tokyo", Country: "Japan"}},
	{ID: "coincheck-jp", Name: "Coincheck", CloudProvider: domain.ProviderGCP, Region: "asia-northeast1", ServerCount: 8,
		Location: domain.Location{Lat: 35.6762, Lng: 139.6503, City: "Tokyo", Country: "Japan"}},
	{ID: "upbit-kr", Name: "Upbit", CloudProvider: domain.ProviderAWS, Region: "ap-northeast-2", ServerCount: 13,
		Location: domain.Location{Lat: 37.5665, Lng: 126.978, City: "Seoul", Country: "South Korea"}},
	{ID: "bithumb-kr", Name: "Bithumb", CloudProvider: domain.ProviderGCP, Region: "asia-northeast3", ServerCount: 11,
		Location: domain.Location{Lat: 37.5665, Lng: 126.978, City: "Seoul", Country: "South Korea"}},
	// Middle East & Africa
	{ID: "binance-ae", Name: "Binance UAE", CloudProvider: domain.ProviderAWS, Region: "me-south-1", ServerCount: 9,
		Location: domain.Location{Lat: 25.2048, Lng: 55.2708, City: "Dubai", Country: "UAE"}},
	{ID: "bitocto-ae", Name: "BitOcto", CloudProvider: domain.ProviderAzure, Region: "uaenorth", ServerCount: 5,
		Location: domain.Location{Lat: 25.2048, Lng: 55.2708, City: "Dubai", Country: "UAE"}},
	{ID: "luno-za", Name: "Luno", CloudProvider: domain.ProviderAWS, Region: "af-south-1", ServerCount: 6,
		Location: domain.Location{Lat: -26.2041, Lng: 28.0473, City: "Johannesburg", Country: "South Africa"}},
	// South America
	{ID: "mercado-br", Name: "Mercado Bitcoin", CloudProvider: domain.ProviderAWS, Region: "sa-east-1", ServerCount: 8,
		Location: domain.Location{Lat: -23.5505, Lng: -46.6333, City: "São Paulo", Country: "Brazil"}},
	{ID: "bitso-mx", Name: "Bitso", CloudProvider: domain.ProviderGCP, Region: "northamerica-northeast1", ServerCount: 7,
		Location: domain.Location{Lat: 19.4326, Lng: -99.1332, City: "Mexico City", Country: "Mexico"}},
	// Oceania
	{ID: "coinjar-au", Name: "CoinJar", CloudProvider: domain.ProviderAWS, Region: "ap-southeast-2", ServerCount: 6,
		Location: domain.Location{Lat: -33.8688, Lng: 151.2093, City: "Sydney", Country: "Australia"}},
	{ID: "independent-au", Name: "Independent Reserve", CloudProvider: domain.ProviderAWS, Region: "ap-southeast-2", ServerCount: 5,
		Location: domain.Location{Lat: -33.8688, Lng: 151.2093, City: "Sydney", Country: "Australia"}},
}

var seedRegions = []domain.CloudRegion{
	// AWS
	{ID: "aws-us-east-1", Provider: domain.ProviderAWS, Name: "US East (N. Virginia)", Code: "us-east-1", ServerCount: 50,
		Location: domain.Location{Lat: 39.0458, Lng: -77.5081, City: "Virginia", Country: "USA"}},
	{ID: "aws-us-east-2", Provider: domain.ProviderAWS, Name: "US East (Ohio)", Code: "us-east-2", ServerCount: 35,
		Location: domain.Location{Lat: 40.4173, Lng: -82.9071, City: "Columbus", Country: "USA"}},
	{ID: "aws-us-west-1", Provider: domain.ProviderAWS, Name: "US West (N. California)", Code: "us-west-1", ServerCount: 40,
		Location: domain.Location{Lat: 37.7749, Lng: -122.4194, City: "San Francisco", Country: "USA"}},
	{ID: "aws-us-west-2", Provider: domain.ProviderAWS, Name: "US West (Oregon)", Code: "us-west-2", ServerCount: 45,
		Location: domain.Location{Lat: 45.5152, Lng: -122.6784, City: "Portland", Country: "USA"}},
	{ID: "aws-ca-central-1", Provider: domain.ProviderAWS, Name: "Canada (Central)", Code: "ca-central-1", ServerCount: 25,
		Location: domain.Location{Lat: 43.6532, Lng: -79.3832, City: "Toronto", Country: "Canada"}},
	{ID: "aws-eu-west-1", Provider: domain.ProviderAWS, Name: "Europe (Ireland)", Code: "eu-west-1", ServerCount: 38,
		Location: domain.Location{Lat: 53.3498, Lng: -6.2603, City: "Dublin", Country: "Ireland"}},
	{ID: "aws-eu-west-2", Provider: domain.ProviderAWS, Name: "Europe (London)", Code: "eu-west-2", ServerCount: 32,
		Location: domain.Location{Lat: 51.5074, Lng: -0.1278, City: "London", Country: "UK"}},
	{ID: "aws-eu-west-3", Provider: domain.ProviderAWS, Name: "Europe (Paris)", Code: "eu-west-3", ServerCount: 28,
		Location: domain.Location{Lat: 48.8566, Lng: 2.3522, City: "Paris", Country: "France"}},
	{ID: "aws-eu-central-1", Provider: domain.ProviderAWS, Name: "Europe (Frankfurt)", Code: "eu-central-1", ServerCount: 42,
		Location: domain.Location{Lat: 50.1109, Lng: 8.6821, City: "Frankfurt", Country: "Germany"}},
	{ID: "aws-eu-north-1", Provider: domain.ProviderAWS, Name: "Europe (Stockholm)", Code: "eu-north-1", ServerCount: 20,
		Location: domain.Location{Lat: 59.3293, Lng: 18.0686, City: "Stockholm", Country: "Sweden"}},
	{ID: "aws-eu-south-1", Provider: domain.ProviderAWS, Name: "Europe (Milan)", Code: "eu-south-1", ServerCount: 18,
		Location: domain.Location{Lat: 45.4642, Lng: 9.19, City: "Milan", Country: "Italy"}},
	{ID: "aws-ap-northeast-1", Provider: domain.ProviderAWS, Name: "Asia Pacific (Tokyo)", Code: "ap-northeast-1", ServerCount: 36,
		Location: domain.Location{Lat: 35.6762, Lng: 139.6503, City: "Tokyo", Country: "Japan"}},
	{ID: "aws-ap-northeast-2", Provider: domain.ProviderAWS, Name: "Asia Pacific (Seoul)", Code: "ap-northeast-2", ServerCount: 30,
		Location: domain.Location{Lat: 37.5665, Lng: 126.978, City: "Seoul", Country: "South Korea"}},
	{ID: "aws-ap-northeast-3", Provider: domain.ProviderAWS, Name: "Asia Pacific (Osaka)", Code: "ap-northeast-3", ServerCount: 22,
		Location: domain.Location{Lat: 34.6937, Lng: 135.5023, City: "Osaka", Country: "Japan"}},
	{ID: "aws-ap-southeast-1", Provider: domain.ProviderAWS, Name: "Asia Pacific (Singapore)", Code: "ap-southeast-1", ServerCount: 34,
		Location: domain.Location{Lat: 1.3521, Lng: 103.8198, City: "Singapore", Country: "Singapore"}},
	{ID: "aws-ap-southeast-2", Provider: domain.ProviderAWS, Name: "Asia Pacific (Sydney)", Code: "ap-southeast-2", ServerCount: 28,
		Location: domain.Location{Lat: -33.8688, Lng: 151.2093, City: "Sydney", Country: "Australia"}},
	{ID: "aws-ap-south-1", Provider: domain.ProviderAWS, Name: "Asia Pacific (Mumbai)", Code: "ap-south-1", ServerCount: 26,
		Location: domain.Location{Lat: 19.076, Lng: 72.8777, City: "Mumbai", Country: "India"}},
	{ID: "aws-me-south-1", Provider: domain.ProviderAWS, Name: "Middle East (Bahrain)", Code: "me-south-1", ServerCount: 15,
		Location: domain.Location{Lat: 26.0667, Lng: 50.5577, City: "Manama", Country: "Bahrain"}},
	{ID: "aws-af-south-1", Provider: domain.ProviderAWS, Name: "Africa (Cape Town)", Code: "af-south-1", ServerCount: 12,
		Location: domain.Location{Lat: -33.9249, Lng: 18.4241, City: "Cape Town", Country: "South Africa"}},
	{ID: "aws-sa-east-1", Provider: domain.ProviderAWS, Name: "South America (São Paulo)", Code: "sa-east-1", ServerCount: 20,
		Location: domain.Location{Lat: -23.5505, Lng: -46.6333, City: "São Paulo", Country: "Brazil"}},
	// GCP
	{ID: "gcp-us-central1", Provider: domain.ProviderGCP, Name: "US Central (Iowa)", Code: "us-central1", ServerCount: 40,
		Location: domain.Location{Lat: 41.5868, Lng: -93.625, City: "Iowa City", Country: "USA"}},
	{ID: "gcp-us-east1", Provider: domain.ProviderGCP, Name: "US East (South Carolina)", Code: "us-east1", ServerCount: 38,
		Location: domain.Location{Lat: 33.8361, Lng: -81.1637, City: "Columbia", Country: "USA"}},
	{ID: "gcp-us-west1", Provider: domain.ProviderGCP, Name: "US West (Oregon)", Code: "us-west1", ServerCount: 35,
		Location: domain.Location{Lat: 45.5152, Lng: -122.6784, City: "Portland", Country: "USA"}},
	{ID: "gcp-europe-west1", Provider: domain.ProviderGCP, Name: "Europe West (Belgium)", Code: "europe-west1", ServerCount: 32,
		Location: domain.Location{Lat: 50.8503, Lng: 4.3517, City: "Brussels", Country: "Belgium"}},
	{ID: "gcp-europe-west2", Provider: domain.ProviderGCP, Name: "Europe West (London)", Code: "europe-west2", ServerCount: 30,
		Location: domain.Location{Lat: 51.5074, Lng: -0.1278, City: "London", Country: "UK"}},
	{ID: "gcp-europe-west4", Provider: domain.ProviderGCP, Name: "Europe West (Netherlands)", Code: "europe-west4", ServerCount: 28,
		Location: domain.Location{Lat: 52.3676, Lng: 4.9041, City: "Amsterdam", Country: "Netherlands"}},
	{ID: "gcp-asia-southeast1", Provider: domain.ProviderGCP, Name: "Asia Southeast (Singapore)", Code: "asia-southeast1", ServerCount: 26,
		Location: domain.Location{Lat: 1.3521, Lng: 103.8198, City: "Singapore", Country: "Singapore"}},
	{ID: "gcp-asia-northeast1", Provider: domain.ProviderGCP, Name: "Asia Northeast (Tokyo)", Code: "asia-northeast1", ServerCount: 24,
		Location: domain.Location{Lat: 35.6762, Lng: 139.6503, City: "Tokyo", Country: "Japan"}},
	// Azure
	{ID: "azure-eastus", Provider: domain.ProviderAzure, Name: "East US (Virginia)", Code: "eastus", ServerCount: 45,
		Location: domain.Location{Lat: 39.0458, Lng: -77.5081, City: "Virginia", Country: "USA"}},
	{ID: "azure-westus2", Provider: domain.ProviderAzure, Name: "West US 2 (Washington)", Code: "westus2", ServerCount: 40,
		Location: domain.Location{Lat: 47.6062, Lng: -122.3321, City: "Seattle", Country: "USA"}},
	{ID: "azure-northeurope", Provider: domain.ProviderAzure, Name: "North Europe (Ireland)", Code: "northeurope", ServerCount: 35,
		Location: domain.Location{Lat: 53.3498, Lng: -6.2603, City: "Dublin", Country: "Ireland"}},
	{ID: "azure-westeurope", Provider: domain.ProviderAzure, Name: "West Europe (Netherlands)", Code: "westeurope", ServerCount: 33,
		Location: domain.Location{Lat: 52.3676, Lng: 4.9041, City: "Amsterdam", Country: "Netherlands"}},
	{ID: "azure-southeastasia", Provider: domain.ProviderAzure, Name: "Southeast Asia (Singapore)", Code: "southeastasia", ServerCount: 30,
		Location: domain.Location{Lat: 1.3521, Lng: 103.8198, City: "Singapore", Country: "Singapore"}},
	{ID: "azure-eastasia", Provider: domain.ProviderAzure, Name: "East Asia (Hong Kong)", Code: "eastasia", ServerCount: 28,
		Location: domain.Location{Lat: 22.3193, Lng: 114.1694, City: "Hong Kong", Country: "Hong Kong"}},
	{ID: "azure-japaneast", Provider: domain.ProviderAzure, Name: "Japan East (Tokyo)", Code: "japaneast", ServerCount: 25,
		Location: domain.Location{Lat: 35.6762, Lng: 139.6503, City: "Tokyo", Country: "Japan"}},
	{ID: "azure-australiaeast", Provider: domain.ProviderAzure, Name: "Australia East (Sydney)", Code: "australiaeast", ServerCount: 22,
		Location: domain.Location{Lat: -33.8688, Lng: 151.2093, City: "Sydney", Country: "Australia"}},
	{ID: "azure-switzerlandnorth", Provider: domain.ProviderAzure, Name: "Switzerland North (Zurich)", Code: "switzerlandnorth", ServerCount: 20,
		Location: domain.Location{Lat: 47.3769, Lng: 8.5417, City: "Zurich", Country: "Switzerland"}},
	{ID: "azure-uaenorth", Provider: domain.ProviderAzure, Name: "UAE North (Dubai)", Code: "uaenorth", ServerCount: 18,
		Location: domain.Location{Lat: 25.2048, Lng: 55.2708, City: "Dubai", Country: "UAE"}},
}
