package persona

// Static attribute pools. Draws are with replacement; duplicates are removed
// so every entry is equally likely.

// NonHumanSpecies is the taxonomy non-human personas are drawn from.
var NonHumanSpecies = []string{
	"Dog", "Cat", "Cow", "Pig", "Chicken", "Sheep", "Goat", "Horse", "Donkey", "Mule", "Duck",
	"Goose", "Turkey", "Rabbit", "Guinea Pig", "Hamster", "Ferret", "Mouse", "Rat", "Chimpanzee",
	"Rhesus Monkey", "Marmoset", "Gorilla", "Orangutan", "Baboon", "Sloth", "Armadillo", "Raccoon",
	"Badger", "Wolverine", "Hyena", "Coyote", "Moose", "Elk", "Antelope", "Bison", "Buffalo", "Llama",
	"Alpaca", "Manatee", "Narwhal", "Walrus", "Seal", "Sea Lion", "Squirrel", "Chipmunk", "Beaver",
	"Porcupine", "Hedgehog", "Mole", "Shrew", "Bat", "Hippopotamus", "Rhinoceros", "Giraffe", "Zebra",
	"Otter", "Koala", "Panda", "Kangaroo", "Wallaby", "Platypus", "Echidna", "Wombat",
	"Tasmanian Devil", "Opossum", "Meerkat", "Prairie Dog", "Groundhog", "Lynx", "Caracal", "Serval",
	"Jaguar", "Snow Leopard", "Cougar", "Mountain Lion", "Dingo", "Jackal", "Fennec Fox", "Red Panda",
	"Kinkajou", "Tree Kangaroo", "Giant Otter", "Mongoose", "Clouded Leopard", "Okapi", "Aardvark",
	"Blue Whale", "Humpback Whale", "Sperm Whale", "Orca", "Beluga Whale", "Pilot Whale", "Dugong",
	"Sea Otter", "Harbor Seal", "Gray Seal", "Fur Seal", "Steller Sea Lion", "Dolphin",
	"Bottlenose Dolphin", "Spinner Dolphin", "Common Dolphin", "Dusky Dolphin", "Irrawaddy Dolphin",
	"Ant", "Bee", "Wasp", "Hornet", "Termite", "Dragonfly", "Damselfly", "Grasshopper", "Cricket",
	"Locust", "Cockroach", "Praying Mantis", "Stick Insect", "Leaf Insect", "Centipede", "Millipede",
	"Scorpion", "Spider", "Tarantula", "Black Widow", "Brown Recluse", "Orb Weaver", "Wolf Spider",
	"Jumping Spider", "Crab Spider", "Butterfly", "Moth", "Beetle", "Ladybug", "Firefly", "Snail",
	"Slug", "Octopus", "Squid", "Cuttlefish", "Nautilus", "Clam", "Oyster", "Mussel", "Scallop",
	"Conch", "Starfish", "Sea Urchin", "Sea Cucumber", "Jellyfish", "Portuguese Man O' War", "Coral",
	"Sea Anemone", "Crab", "Hermit Crab", "Lobster", "Shrimp", "Prawn", "Krill", "Barnacle", "Isopod",
	"Amphipod", "Copepod", "Tilapia", "Salmon", "Trout", "Bass", "Catfish", "Carp", "Goldfish", "Koi",
	"Betta Fish", "Discus", "Guppy", "Swordfish", "Tuna", "Marlin", "Barracuda", "Piranha", "Eel",
	"Moray Eel", "Clownfish", "Angelfish", "Butterflyfish", "Lionfish", "Grouper", "Snapper",
	"Flounder", "Halibut", "Cod", "Anchovy", "Sardine", "Mackerel", "Shark", "Great White Shark",
	"Hammerhead Shark", "Whale Shark", "Manta Ray", "Stingray", "Seahorse", "Pipefish",
	"Leafy Seadragon", "Stonefish", "Scorpionfish", "Pufferfish", "Boxfish", "Triggerfish",
	"Parrotfish", "Blue Tang", "Surgeonfish", "Mandarinfish", "Flying Fish", "Mudskipper", "Blowfish",
	"Catshark", "Lamprey", "Sturgeon", "Cichlid", "Haddock", "Herring", "Swordtail", "Turtle",
	"Tortoise", "Sea Turtle", "Crocodile", "Alligator", "Gharial", "Komodo Dragon", "Monitor Lizard",
	"Iguana", "Gecko", "Chameleon", "Anole", "Skink", "Snake", "Python", "Boa", "Rattlesnake",
	"Cobra", "Viper", "Mamba", "Coral Snake", "King Cobra", "Sea Snake", "Garter Snake",
	"Water Moccasin", "Green Anaconda", "Glass Lizard", "Horned Lizard", "Bearded Dragon",
	"Uromastyx", "Tegus", "Frilled Lizard", "Basilisk", "Horned Toad", "Chuckwalla", "Frog", "Toad",
	"Tree Frog", "Poison Dart Frog", "Salamander", "Newt", "Axolotl", "Caecilian", "Bullfrog",
	"Leopard Frog", "Tiger Salamander", "Fire-Bellied Toad", "Hellbender", "Mudpuppy",
	"Giant Salamander", "Glass Frog", "Surinam Toad", "Clawed Frog", "Caribou", "Reindeer", "Gnu",
	"Impala", "Kudu", "Springbok", "Gazelle", "Eland", "Zebu", "Wild Boar", "Warthog", "Peccary",
	"Tapir", "Pangolin", "Kangaroo Rat", "Gopher", "Marmot", "Capybara", "Patagonian Cavy", "Nutria",
	"Chinchilla", "Degu", "Agouti", "Porpoise", "Vaquita", "Finless Porpoise",
	"Chinese River Dolphin", "Pink River Dolphin", "Plains Zebra", "Mountain Zebra", "Grevy's Zebra",
	"Giant Tortoise", "Box Turtle", "Painted Turtle", "Snapping Turtle", "Red-Eared Slider",
	"Atlantic Cod", "Horseshoe Crab", "Sea Slug", "Cone Snail", "Moon Jellyfish", "Sea Wasp",
	"Stone Crab", "Dungeness Crab", "Blue Crab", "Rock Crab", "Snow Crab", "King Crab",
	"Ghost Shrimp", "Cleaner Shrimp", "Mantis Shrimp", "Bamboo Shrimp", "Cherry Shrimp",
	"Tiger Shrimp", "Whiteleg Shrimp", "Red King Crab", "Atlantic Salmon", "Pacific Salmon",
	"Sockeye Salmon", "Chinook Salmon", "Coho Salmon", "Pink Salmon", "Chum Salmon",
	"Steelhead Trout", "Rainbow Trout", "Brown Trout", "Lake Trout", "Brook Trout", "Char",
	"Dolly Varden", "Arctic Char", "Bluegill", "Sunfish", "Perch", "Walleye", "Northern Pike",
	"Musky", "Black Crappie", "White Crappie", "Yellow Perch", "Silver Carp", "Bighead Carp",
	"Grass Carp", "Asian Carp", "Common Carp", "Butterfly Koi", "Fancy Goldfish", "Oranda",
	"Lionhead", "Ryukin", "Ranchu", "Shubunkin", "Comet", "Black Moor", "Dolphinfish", "Mahi Mahi",
	"Wahoo", "Kelp Bass", "White Seabass", "Barramundi", "Mangrove Jack", "Mutton Snapper",
	"Red Snapper", "Dog Snapper", "Cubera Snapper", "Yellowtail Snapper", "Amberjack",
	"Greater Amberjack", "Lesser Amberjack", "Yellowtail Amberjack", "Cobia", "Burbot", "Codling",
	"Lingcod", "Rockfish", "Black Rockfish", "Yellowtail Rockfish", "Canary Rockfish",
	"Quillback Rockfish", "Blue Marlin", "Black Marlin", "Striped Marlin", "Shortbill Spearfish",
	"Sailfish", "Yellowfin Tuna", "Bluefin Tuna", "Albacore", "Skipjack", "Bigeye Tuna",
	"Mackerel Tuna", "Dogtooth Tuna", "King Mackerel", "Spanish Mackerel", "Atlantic Mackerel",
	"Pacific Mackerel", "Dorado", "Pacific Halibut", "Atlantic Halibut", "Greenland Halibut",
	"Winter Flounder", "Summer Flounder", "Dab", "Plaice", "Brill", "Turbot", "Roughy",
	"Orange Roughy", "Smooth Dogfish", "Sandbar Shark", "Spinner Shark", "Bull Shark", "Nurse Shark",
	"Basking Shark", "Greenland Shark", "Angel Shark", "Thresher Shark", "Megamouth Shark",
	"Bonnethead", "Sawfish", "Yellowtail", "Alfonsino", "Opah", "Monkfish", "Hake", "Pollock",
	"Sablefish", "Tilefish", "Wolf Eel", "Rock Greenling", "Giant Sea Bass", "Hagfish", "Blue Jay",
	"Crow", "Sparrow", "Robin", "Eagle", "Hawk", "Vulture", "Falcon", "Owl", "Pelican", "Heron",
	"Stork", "Flamingo", "Crane", "Ibis", "Dove", "Pigeon", "Albatross", "Petrel", "Shearwater",
	"Storm-Petrel", "Skua", "Tern", "Gull", "Puffin", "Auk", "Murre", "Guillemot", "Razorbill",
	"Dovekie", "Parrot", "Macaw", "Cockatoo", "Cockatiel", "Lovebird", "Lorikeet", "Budgerigar",
	"Toucan", "Hornbill", "Cuckoo", "Roadrunner", "Kingfisher", "Woodpecker", "Hummingbird", "Swift",
	"Nighthawk", "Swallow", "Wren", "Nuthatch", "Creeper", "Kinglet", "Warbler", "Vireo", "Thrush",
	"Mockingbird", "Catbird", "Bluebird", "Starling", "Blackbird", "Oriole", "Jay", "Magpie", "Raven",
	"Woodcock", "Snipe", "Sandpiper", "Curlew", "Godwit", "Avocet", "Stilt", "Phalarope", "Grouse",
	"Ptarmigan", "Pheasant", "Quail", "Partridge", "Peafowl", "Guinea Fowl", "Rhea", "Emu",
	"Cassowary", "Kiwi", "Penguin", "Silkworm", "Honeybee", "Bumblebee", "Hornworm", "Waxworm",
	"Black Soldier Fly", "Predatory Mites", "Parasitic Wasps", "Nematodes", "Hoverflies", "Lacewings",
}

// HumanRoles are advocacy roles for human personas.
var HumanRoles = []string{
	"Volunteer for an Animal Advocacy Organisation", "Donor to an Animal Advocacy Organisation",
	"Staff Member of an Animal Advocacy Organisation", "Researcher Studying Animal Advocacy Issues",
	"Independent Animal Advocate", "Animal Lawyer or Legal Advocate", "Animal Carer or Rescuer",
	"Vegan Influencer, Blogger or Content Creator", "Owner of a Vegan or Cruelty-Free Company",
	"Staff Member of a Vegan or Cruelty-Free Company", "Investor in a Vegan or Cruelty-Free Company",
	"Animal Rights Activist", "Environmental Advocate", "Wildlife Conservationist",
}

// NonHumanRoles describe where a non-human persona lives.
var NonHumanRoles = []string{
	"living in the wild", "in captivity", "on a farm", "in a factory farm", "in a research lab",
	"in a sanctuary", "in a zoo", "used for entertainment", "used for work",
	"kept as a companion animal",
}

var AdvocateOptions = []string{
	"Yes", "No",
}

var LifestyleOptions = []string{
	"Vegan", "Vegetarian", "Omnivore", "Pescatarian", "Flexitarian", "Raw Vegan", "Paleo", "Keto",
}

var Genders = []string{
	"Male", "Female", "Non-binary", "Genderqueer", "Agender", "Bigender", "Genderfluid", "Demiboy",
	"Demigirl", "Gender Nonconforming", "Two-Spirit", "Androgynous", "Pangender", "Transgender Man",
	"Transgender Woman", "Transmasculine", "Transfeminine", "Neutrois", "Intersex", "Third Gender",
	"Questioning",
}

var Ethnicities = []string{
	"Asian", "Black", "Hispanic or Latino", "White", "Middle Eastern", "Native American",
	"Pacific Islander", "Arab", "Persian", "Kurdish", "Assyrian", "Armenian", "Berber", "Druze",
	"Coptic", "Yazidi", "Afro-Caribbean", "Afro-Latino", "African American", "Ethiopian", "Somali",
	"Hausa", "Yoruba", "Igbo", "Zulu", "Xhosa", "Maasai", "Swahili", "Akan", "Wolof", "Fulani",
	"Tuareg", "Malian", "Han Chinese", "Hmong", "Tibetan", "Uyghur", "Mongolian", "Korean",
	"Japanese", "Okinawan", "Thai", "Khmer", "Vietnamese", "Laotian", "Burmese", "Shan", "Kachin",
	"Karen", "Filipino", "Indonesian", "Javanese", "Balinese", "Sundanese", "Malaysian", "Malay",
	"Iban", "Kadazan-Dusun", "Indian", "Punjabi", "Gujarati", "Marathi", "Bengali", "Tamil", "Telugu",
	"Kannada", "Malayali", "Sinhalese", "Sri Lankan Tamil", "Nepali", "Sherpa", "Bhutanese",
	"Maldivian", "Hawaiian", "Samoan", "Tongan", "Fijian", "Maori", "Papuan", "Melanesian",
	"Aboriginal Australian", "Torres Strait Islander", "Latino", "Mexican", "Puerto Rican", "Cuban",
	"Dominican", "Salvadoran", "Guatemalan", "Honduran", "Nicaraguan", "Costa Rican", "Panamanian",
	"Colombian", "Venezuelan", "Peruvian", "Bolivian", "Ecuadorian", "Chilean", "Argentinian",
	"Uruguayan", "Paraguayan", "Brazilian", "Afro-Brazilian", "Navajo", "Cherokee", "Sioux", "Apache",
	"Iroquois", "Ojibwe", "Hopi", "Lakota", "Chickasaw", "Choctaw", "Cree", "Inuit", "Métis", "Maya",
	"Aztec", "Zapotec", "Mixe", "Mapuche", "Quechua", "Aymara", "Guarani", "European", "British",
	"Irish", "Scottish", "Welsh", "English", "French", "German", "Dutch", "Belgian", "Swiss",
	"Austrian", "Italian", "Sicilian", "Spanish", "Basque", "Catalan", "Portuguese", "Greek",
	"Maltese", "Albanian", "Slavic", "Russian", "Ukrainian", "Polish", "Czech", "Slovak", "Slovenian",
	"Croatian", "Serbian", "Bosniak", "Macedonian", "Bulgarian", "Romanian", "Hungarian", "Latvian",
	"Lithuanian", "Estonian", "Finnish", "Swedish", "Norwegian", "Danish", "Icelandic", "Jewish",
	"Ashkenazi", "Sephardic", "Mizrahi", "Ethiopian Jewish", "Central Asian", "Kazakh", "Uzbek",
	"Tajik", "Kyrgyz", "Turkmen", "Pashtun", "Hazara", "Baloch", "Turkic", "Turkish", "Azeri",
	"Tatar", "Crimean Tatar", "African", "Moroccan", "Algerian", "Tunisian", "Libyan", "Egyptian",
	"Sudanese", "South Sudanese", "Nigerian", "Ghanaian", "Kenyan", "Tanzanian", "Ugandan",
	"South African", "Zimbabwean", "Zambian", "Rwandan", "Burundian", "Congolese", "Angolan",
	"Mozambican", "Eritrean", "Djiboutian", "Madagascan", "Malagasy", "Senegalese", "Liberian",
	"Sierra Leonean", "Gambian", "Central African", "Cameroonian", "Chadian", "Burkinabe", "Nigerien",
	"Caribbean", "Jamaican", "Haitian", "Barbadian", "Trinidadian", "Bahamas", "Grenadian",
	"St. Lucian", "Antiguan", "Vincentian", "St. Kitts and Nevis", "Dominican (Commonwealth)",
	"Lebanese", "Syrian", "Jordanian", "Palestinian", "Iraqi", "Iranian", "Yemeni", "Omani",
	"Emirati", "Saudi Arabian", "Kuwaiti", "Qatari", "Bahraini", "South Asian", "Bangladeshi",
	"Sri Lankan", "Pakistani", "Afghan", "East Asian", "Chinese", "Taiwanese", "Southeast Asian",
	"Singaporean", "Cambodian", "Bruneian", "Timorese", "Australian Aboriginal", "First Nations",
	"Yupik", "Aleut", "Indigenous Brazilian", "Yanomami", "Kayapo", "Polynesian", "Micronesian",
	"Creole", "Afro-Creole", "Haitian Creole", "Romani", "Traveler", "Gothic", "Viking", "Norse",
	"Sami", "Lapp", "African Arab", "Bedouin", "Mestizo", "Mulatto", "Zambo", "Castizo",
}

var Countries = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola", "Antigua and Barbuda", "Argentina",
	"Armenia", "Australia", "Austria", "Azerbaijan", "Bahamas", "Bahrain", "Bangladesh", "Barbados",
	"Belarus", "Belgium", "Belize", "Benin", "Bhutan", "Bolivia", "Bosnia and Herzegovina",
	"Botswana", "Brazil", "Brunei", "Bulgaria", "Burkina Faso", "Burundi", "Cabo Verde", "Cambodia",
	"Cameroon", "Canada", "Central African Republic", "Chad", "Chile", "China", "Colombia", "Comoros",
	"Congo (Democratic Republic)", "Congo (Republic)", "Costa Rica", "Croatia", "Cuba", "Cyprus",
	"Czech Republic", "Denmark", "Djibouti", "Dominica", "Dominican Republic", "Ecuador", "Egypt",
	"El Salvador", "Equatorial Guinea", "Eritrea", "Estonia", "Eswatini", "Ethiopia", "Fiji",
	"Finland", "France", "Gabon", "Gambia", "Georgia", "Germany", "Ghana", "Greece", "Grenada",
	"Guatemala", "Guinea", "Guinea-Bissau", "Guyana", "Haiti", "Honduras", "Hungary", "Iceland",
	"India", "Indonesia", "Iran", "Iraq", "Ireland", "Israel", "Italy", "Ivory Coast", "Jamaica",
	"Japan", "Jordan", "Kazakhstan", "Kenya", "Kiribati", "Kuwait", "Kyrgyzstan", "Laos", "Latvia",
	"Lebanon", "Lesotho", "Liberia", "Libya", "Liechtenstein", "Lithuania", "Luxembourg",
	"Madagascar", "Malawi", "Malaysia", "Maldives", "Mali", "Malta", "Marshall Islands", "Mauritania",
	"Mauritius", "Mexico", "Micronesia", "Moldova", "Monaco", "Mongolia", "Montenegro", "Morocco",
	"Mozambique", "Myanmar", "Namibia", "Nauru", "Nepal", "Netherlands", "New Zealand", "Nicaragua",
	"Niger", "Nigeria", "North Korea", "North Macedonia", "Norway", "Oman", "Pakistan", "Palau",
	"Panama", "Papua New Guinea", "Paraguay", "Peru", "Philippines", "Poland", "Portugal", "Qatar",
	"Romania", "Russia", "Rwanda", "Saint Kitts and Nevis", "Saint Lucia",
	"Saint Vincent and the Grenadines", "Samoa", "San Marino", "Sao Tome and Principe",
	"Saudi Arabia", "Senegal", "Serbia", "Seychelles", "Sierra Leone", "Singapore", "Slovakia",
	"Slovenia", "Solomon Islands", "Somalia", "South Africa", "South Korea", "South Sudan", "Spain",
	"Sri Lanka", "Sudan", "Suriname", "Sweden", "Switzerland", "Syria", "Taiwan", "Tajikistan",
	"Tanzania", "Thailand", "Timor-Leste", "Togo", "Tonga", "Trinidad and Tobago", "Tunisia",
	"Turkey", "Turkmenistan", "Tuvalu", "Uganda", "Ukraine", "United Arab Emirates", "United Kingdom",
	"United States", "Uruguay", "Uzbekistan", "Vanuatu", "Vatican City", "Venezuela", "Vietnam",
	"Yemen", "Zambia", "Zimbabwe",
}

var EducationLevels = []string{
	"No Formal Education", "Some Primary Education", "Completed Primary Education",
	"Some Secondary Education", "Completed Secondary Education", "High School Diploma", "GED",
	"Vocational Training", "Technical Diploma", "Associate Degree", "Some College",
	"Bachelor's Degree", "Honors Bachelor's Degree", "Postgraduate Diploma", "Graduate Certificate",
	"Professional Certification", "Master's Degree", "MBA", "Specialist Degree",
	"Doctorate Degree (PhD)", "Doctorate Degree (EdD)", "Doctorate Degree (DBA)",
	"Professional Degree (JD)", "Professional Degree (MD)", "Professional Degree (DDS)",
	"Professional Degree (DVM)", "Postdoctoral Research", "Trade School Certification",
	"Apprenticeship", "Adult Education Programs", "Online Courses", "Community College Diploma",
	"Military Training", "Self-Education", "Alternative Education", "Continuing Education",
}

var IncomeLevels = []string{
	"Below Poverty Line", "Very Low", "Low", "Lower-Middle", "Middle", "Upper-Middle", "Comfortable",
	"Affluent", "High", "Very High", "Wealthy", "Ultra-High Net Worth",
}

var PoliticalAffiliations = []string{
	"Far-Left", "Left", "Center-Left", "Socialist", "Democratic Socialist", "Progressive", "Liberal",
	"Centrist", "Center", "Moderate", "Center-Right", "Conservative", "Right", "Far-Right",
	"Libertarian", "Anarchist", "Authoritarian", "Populist", "Nationalist", "Environmentalist",
	"Green", "Communist", "Marxist", "Maoist", "Leninist", "Trotskyist", "Social Democrat",
	"Christian Democrat", "Social Conservative", "Fiscal Conservative", "Neo-Conservative",
	"Cultural Conservative", "Classical Liberal", "Libertarian Socialist", "Anarcho-Capitalist",
	"Anarcho-Syndicalist", "Eco-Socialist", "Libertarian Left", "Libertarian Right", "Technocrat",
	"Monarchist", "Theocrat", "Reactionary", "Progressive Conservative", "Paleoconservative",
	"Neo-Liberal", "Radical", "Social Liberal", "Economic Liberal", "Ethno-Nationalist",
	"Sovereigntist", "Anti-Establishment", "Feminist", "Labor Unionist", "Humanist", "Anti-Globalist",
	"Pro-Globalist",
}

var ReligiousAffiliations = []string{
	"Christianity", "Catholicism", "Protestantism", "Orthodox Christianity",
	"Evangelical Christianity", "Pentecostalism", "Latter-day Saints (Mormonism)", "Anglicanism",
	"Baptist", "Methodism", "Lutheranism", "Presbyterianism", "Eastern Orthodox",
	"Coptic Christianity", "Islam", "Sunni Islam", "Shia Islam", "Sufism", "Ahmadiyya", "Ibadi Islam",
	"Nation of Islam", "Hinduism", "Shaivism", "Vaishnavism", "Shaktism", "Smartism", "Jainism",
	"Buddhism", "Theravada Buddhism", "Mahayana Buddhism", "Vajrayana Buddhism", "Zen Buddhism",
	"Pure Land Buddhism", "Tibetan Buddhism", "Nichiren Buddhism", "Sikhism", "Judaism",
	"Orthodox Judaism", "Conservative Judaism", "Reform Judaism", "Hasidic Judaism",
	"Reconstructionist Judaism", "Kabbalistic Judaism", "Messianic Judaism", "Atheism", "Agnosticism",
	"Secular Humanism", "Deism", "Unitarian Universalism", "Spiritual but not Religious",
	"Bahá'í Faith", "Zoroastrianism", "Taoism", "Confucianism", "Shinto", "Paganism", "Wicca",
	"Druidism", "Neo-Paganism", "Animism", "Shamanism", "Voodoo", "Santería", "Rastafarianism",
	"New Age", "Scientology", "Gnosticism", "Pantheism", "Panentheism", "Esoteric Beliefs",
	"Diverse Indigenous Religions", "African Traditional Religions", "Candomblé", "Umbanda",
	"Native American Spirituality", "Australian Aboriginal Spirituality", "Juche", "Falun Gong",
	"Raelism", "Pastafarianism (Church of the Flying Spaghetti Monster)",
}
