package seed

// State slugs exactly as the production pipeline stores them, including
// the pre-2020 names some datasets still carry.
var stateSlugs = []string{
	"andaman-and-nicobar-islands",
	"andhra-pradesh",
	"arunachal-pradesh",
	"assam",
	"bihar",
	"chandigarh",
	"chhattisgarh",
	"dadra-and-nagar-haveli-and-daman-and-diu",
	"delhi",
	"goa",
	"gujarat",
	"haryana",
	"himachal-pradesh",
	"jammu-and-kashmir",
	"jharkhand",
	"karnataka",
	"kerala",
	"ladakh",
	"lakshadweep",
	"madhya-pradesh",
	"maharashtra",
	"manipur",
	"meghalaya",
	"mizoram",
	"nagaland",
	"odisha",
	"puducherry",
	"punjab",
	"rajasthan",
	"sikkim",
	"tamil-nadu",
	"telangana",
	"tripura",
	"uttar-pradesh",
	"uttarakhand",
	"west-bengal",
}

var phoneBrands = []string{
	"Xiaomi", "Samsung", "Vivo", "Oppo", "OnePlus",
	"Realme", "Apple", "Motorola", "Lenovo", "Others",
}

var transactionTypes = []string{
	"Recharge & bill payments",
	"Peer-to-peer payments",
	"Merchant payments",
	"Financial Services",
	"Others",
}

var districts = []string{
	"bangalore urban district", "mumbai suburban district", "pune district",
	"jaipur district", "patna district", "hyderabad district",
	"north 24 parganas district", "chennai district", "ernakulam district",
	"lucknow district",
}

var pincodes = []string{
	"560001", "400001", "411001", "302001", "800001",
	"500001", "700001", "600001", "682001", "226001",
}
