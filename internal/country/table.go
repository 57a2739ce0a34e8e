package country

// builtin is the ISO 3166-1 country table. English names use their common
// short form; German names follow the usual DIN/StAGN short forms.
var builtin = []Entry{
	{"Afghanistan", "Afghanistan", "AF", "AFG", "004"},
	{"Åland Islands", "Ålandinseln", "AX", "ALA", "248"},
	{"Albania", "Albanien", "AL", "ALB", "008"},
	{"Algeria", "Algerien", "DZ", "DZA", "012"},
	{"American Samoa", "Amerikanisch-Samoa", "AS", "ASM", "016"},
	{"Andorra", "Andorra", "AD", "AND", "020"},
	{"Angola", "Angola", "AO", "AGO", "024"},
	{"Anguilla", "Anguilla", "AI", "AIA", "660"},
	{"Antarctica", "Antarktis", "AQ", "ATA", "010"},
	{"Antigua and Barbuda", "Antigua und Barbuda", "AG", "ATG", "028"},
	{"Argentina", "Argentinien", "AR", "ARG", "032"},
	{"Armenia", "Armenien", "AM", "ARM", "051"},
	{"Aruba", "Aruba", "AW", "ABW", "533"},
	{"Australia", "Australien", "AU", "AUS", "036"},
	{"Austria", "Österreich", "AT", "AUT", "040"},
	{"Azerbaijan", "Aserbaidschan", "AZ", "AZE", "031"},
	{"Bahamas", "Bahamas", "BS", "BHS", "044"},
	{"Bahrain", "Bahrain", "BH", "BHR", "048"},
	{"Bangladesh", "Bangladesch", "BD", "BGD", "050"},
	{"Barbados", "Barbados", "BB", "BRB", "052"},
	{"Belarus", "Belarus", "BY", "BLR", "112"},
	{"Belgium", "Belgien", "BE", "BEL", "056"},
	{"Belize", "Belize", "BZ", "BLZ", "084"},
	{"Benin", "Benin", "BJ", "BEN", "204"},
	{"Bermuda", "Bermuda", "BM", "BMU", "060"},
	{"Bhutan", "Bhutan", "BT", "BTN", "064"},
	{"Bolivia", "Bolivien", "BO", "BOL", "068"},
	{"Bonaire, Sint Eustatius and Saba", "Bonaire, Sint Eustatius und Saba", "BQ", "BES", "535"},
	{"Bosnia and Herzegovina", "Bosnien und Herzegowina", "BA", "BIH", "070"},
	{"Botswana", "Botsuana", "BW", "BWA", "072"},
	{"Bouvet Island", "Bouvetinsel", "BV", "BVT", "074"},
	{"Brazil", "Brasilien", "BR", "BRA", "076"},
	{"British Indian Ocean Territory", "Britisches Territorium im Indischen Ozean", "IO", "IOT", "086"},
	{"Brunei Darussalam", "Brunei", "BN", "BRN", "096"},
	{"Bulgaria", "Bulgarien", "BG", "BGR", "100"},
	{"Burkina Faso", "Burkina Faso", "BF", "BFA", "854"},
	{"Burundi", "Burundi", "BI", "BDI", "108"},
	{"Cabo Verde", "Kap Verde", "CV", "CPV", "132"},
	{"Cambodia", "Kambodscha", "KH", "KHM", "116"},
	{"Cameroon", "Kamerun", "CM", "CMR", "120"},
	{"Canada", "Kanada", "CA", "CAN", "124"},
	{"Cayman Islands", "Kaimaninseln", "KY", "CYM", "136"},
	{"Central African Republic", "Zentralafrikanische Republik", "CF", "CAF", "140"},
	{"Chad", "Tschad", "TD", "TCD", "148"},
	{"Chile", "Chile", "CL", "CHL", "152"},
	{"China", "China", "CN", "CHN", "156"},
	{"Christmas Island", "Weihnachtsinsel", "CX", "CXR", "162"},
	{"Cocos (Keeling) Islands", "Kokosinseln", "CC", "CCK", "166"},
	{"Colombia", "Kolumbien", "CO", "COL", "170"},
	{"Comoros", "Komoren", "KM", "COM", "174"},
	{"Congo", "Kongo", "CG", "COG", "178"},
	{"Congo, Democratic Republic of the", "Kongo, Demokratische Republik", "CD", "COD", "180"},
	{"Cook Islands", "Cookinseln", "CK", "COK", "184"},
	{"Costa Rica", "Costa Rica", "CR", "CRI", "188"},
	{"Côte d'Ivoire", "Elfenbeinküste", "CI", "CIV", "384"},
	{"Croatia", "Kroatien", "HR", "HRV", "191"},
	{"Cuba", "Kuba", "CU", "CUB", "192"},
	{"Curaçao", "Curaçao", "CW", "CUW", "531"},
	{"Cyprus", "Zypern", "CY", "CYP", "196"},
	{"Czechia", "Tschechien", "CZ", "CZE", "203"},
	{"Denmark", "Dänemark", "DK", "DNK", "208"},
	{"Djibouti", "Dschibuti", "DJ", "DJI", "262"},
	{"Dominica", "Dominica", "DM", "DMA", "212"},
	{"Dominican Republic", "Dominikanische Republik", "DO", "DOM", "214"},
	{"Ecuador", "Ecuador", "EC", "ECU", "218"},
	{"Egypt", "Ägypten", "EG", "EGY", "818"},
	{"El Salvador", "El Salvador", "SV", "SLV", "222"},
	{"Equatorial Guinea", "Äquatorialguinea", "GQ", "GNQ", "226"},
	{"Eritrea", "Eritrea", "ER", "ERI", "232"},
	{"Estonia", "Estland", "EE", "EST", "233"},
	{"Eswatini", "Eswatini", "SZ", "SWZ", "748"},
	{"Ethiopia", "Äthiopien", "ET", "ETH", "231"},
	{"Falkland Islands", "Falklandinseln", "FK", "FLK", "238"},
	{"Faroe Islands", "Färöer", "FO", "FRO", "234"},
	{"Fiji", "Fidschi", "FJ", "FJI", "242"},
	{"Finland", "Finnland", "FI", "FIN", "246"},
	{"France", "Frankreich", "FR", "FRA", "250"},
	{"French Guiana", "Französisch-Guayana", "GF", "GUF", "254"},
	{"French Polynesia", "Französisch-Polynesien", "PF", "PYF", "258"},
	{"French Southern Territories", "Französische Süd- und Antarktisgebiete", "TF", "ATF", "260"},
	{"Gabon", "Gabun", "GA", "GAB", "266"},
	{"Gambia", "Gambia", "GM", "GMB", "270"},
	{"Georgia", "Georgien", "GE", "GEO", "268"},
	{"Germany", "Deutschland", "DE", "DEU", "276"},
	{"Ghana", "Ghana", "GH", "GHA", "288"},
	{"Gibraltar", "Gibraltar", "GI", "GIB", "292"},
	{"Greece", "Griechenland", "GR", "GRC", "300"},
	{"Greenland", "Grönland", "GL", "GRL", "304"},
	{"Grenada", "Grenada", "GD", "GRD", "308"},
	{"Guadeloupe", "Guadeloupe", "GP", "GLP", "312"},
	{"Guam", "Guam", "GU", "GUM", "316"},
	{"Guatemala", "Guatemala", "GT", "GTM", "320"},
	{"Guernsey", "Guernsey", "GG", "GGY", "831"},
	{"Guinea", "Guinea", "GN", "GIN", "324"},
	{"Guinea-Bissau", "Guinea-Bissau", "GW", "GNB", "624"},
	{"Guyana", "Guyana", "GY", "GUY", "328"},
	{"Haiti", "Haiti", "HT", "HTI", "332"},
	{"Heard Island and McDonald Islands", "Heard und McDonaldinseln", "HM", "HMD", "334"},
	{"Holy See", "Vatikanstadt", "VA", "VAT", "336"},
	{"Honduras", "Honduras", "HN", "HND", "340"},
	{"Hong Kong", "Hongkong", "HK", "HKG", "344"},
	{"Hungary", "Ungarn", "HU", "HUN", "348"},
	{"Iceland", "Island", "IS", "ISL", "352"},
	{"India", "Indien", "IN", "IND", "356"},
	{"Indonesia", "Indonesien", "ID", "IDN", "360"},
	{"Iran", "Iran", "IR", "IRN", "364"},
	{"Iraq", "Irak", "IQ", "IRQ", "368"},
	{"Ireland", "Irland", "IE", "IRL", "372"},
	{"Isle of Man", "Insel Man", "IM", "IMN", "833"},
	{"Israel", "Israel", "IL", "ISR", "376"},
	{"Italy", "Italien", "IT", "ITA", "380"},
	{"Jamaica", "Jamaika", "JM", "JAM", "388"},
	{"Japan", "Japan", "JP", "JPN", "392"},
	{"Jersey", "Jersey", "JE", "JEY", "832"},
	{"Jordan", "Jordanien", "JO", "JOR", "400"},
	{"Kazakhstan", "Kasachstan", "KZ", "KAZ", "398"},
	{"Kenya", "Kenia", "KE", "KEN", "404"},
	{"Kiribati", "Kiribati", "KI", "KIR", "296"},
	{"North Korea", "Nordkorea", "KP", "PRK", "408"},
	{"South Korea", "Südkorea", "KR", "KOR", "410"},
	{"Kuwait", "Kuwait", "KW", "KWT", "414"},
	{"Kyrgyzstan", "Kirgisistan", "KG", "KGZ", "417"},
	{"Laos", "Laos", "LA", "LAO", "418"},
	{"Latvia", "Lettland", "LV", "LVA", "428"},
	{"Lebanon", "Libanon", "LB", "LBN", "422"},
	{"Lesotho", "Lesotho", "LS", "LSO", "426"},
	{"Liberia", "Liberia", "LR", "LBR", "430"},
	{"Libya", "Libyen", "LY", "LBY", "434"},
	{"Liechtenstein", "Liechtenstein", "LI", "LIE", "438"},
	{"Lithuania", "Litauen", "LT", "LTU", "440"},
	{"Luxembourg", "Luxemburg", "LU", "LUX", "442"},
	{"Macao", "Macau", "MO", "MAC", "446"},
	{"Madagascar", "Madagaskar", "MG", "MDG", "450"},
	{"Malawi", "Malawi", "MW", "MWI", "454"},
	{"Malaysia", "Malaysia", "MY", "MYS", "458"},
	{"Maldives", "Malediven", "MV", "MDV", "462"},
	{"Mali", "Mali", "ML", "MLI", "466"},
	{"Malta", "Malta", "MT", "MLT", "470"},
	{"Marshall Islands", "Marshallinseln", "MH", "MHL", "584"},
	{"Martinique", "Martinique", "MQ", "MTQ", "474"},
	{"Mauritania", "Mauretanien", "MR", "MRT", "478"},
	{"Mauritius", "Mauritius", "MU", "MUS", "480"},
	{"Mayotte", "Mayotte", "YT", "MYT", "175"},
	{"Mexico", "Mexiko", "MX", "MEX", "484"},
	{"Micronesia", "Mikronesien", "FM", "FSM", "583"},
	{"Moldova", "Moldau", "MD", "MDA", "498"},
	{"Monaco", "Monaco", "MC", "MCO", "492"},
	{"Mongolia", "Mongolei", "MN", "MNG", "496"},
	{"Montenegro", "Montenegro", "ME", "MNE", "499"},
	{"Montserrat", "Montserrat", "MS", "MSR", "500"},
	{"Morocco", "Marokko", "MA", "MAR", "504"},
	{"Mozambique", "Mosambik", "MZ", "MOZ", "508"},
	{"Myanmar", "Myanmar", "MM", "MMR", "104"},
	{"Namibia", "Namibia", "NA", "NAM", "516"},
	{"Nauru", "Nauru", "NR", "NRU", "520"},
	{"Nepal", "Nepal", "NP", "NPL", "524"},
	{"Netherlands", "Niederlande", "NL", "NLD", "528"},
	{"New Caledonia", "Neukaledonien", "NC", "NCL", "540"},
	{"New Zealand", "Neuseeland", "NZ", "NZL", "554"},
	{"Nicaragua", "Nicaragua", "NI", "NIC", "558"},
	{"Niger", "Niger", "NE", "NER", "562"},
	{"Nigeria", "Nigeria", "NG", "NGA", "566"},
	{"Niue", "Niue", "NU", "NIU", "570"},
	{"Norfolk Island", "Norfolkinsel", "NF", "NFK", "574"},
	{"North Macedonia", "Nordmazedonien", "MK", "MKD", "807"},
	{"Northern Mariana Islands", "Nördliche Marianen", "MP", "MNP", "580"},
	{"Norway", "Norwegen", "NO", "NOR", "578"},
	{"Oman", "Oman", "OM", "OMN", "512"},
	{"Pakistan", "Pakistan", "PK", "PAK", "586"},
	{"Palau", "Palau", "PW", "PLW", "585"},
	{"Palestine", "Palästina", "PS", "PSE", "275"},
	{"Panama", "Panama", "PA", "PAN", "591"},
	{"Papua New Guinea", "Papua-Neuguinea", "PG", "PNG", "598"},
	{"Paraguay", "Paraguay", "PY", "PRY", "600"},
	{"Peru", "Peru", "PE", "PER", "604"},
	{"Philippines", "Philippinen", "PH", "PHL", "608"},
	{"Pitcairn", "Pitcairninseln", "PN", "PCN", "612"},
	{"Poland", "Polen", "PL", "POL", "616"},
	{"Portugal", "Portugal", "PT", "PRT", "620"},
	{"Puerto Rico", "Puerto Rico", "PR", "PRI", "630"},
	{"Qatar", "Katar", "QA", "QAT", "634"},
	{"Réunion", "Réunion", "RE", "REU", "638"},
	{"Romania", "Rumänien", "RO", "ROU", "642"},
	{"Russia", "Russland", "RU", "RUS", "643"},
	{"Rwanda", "Ruanda", "RW", "RWA", "646"},
	{"Saint Barthélemy", "Saint-Barthélemy", "BL", "BLM", "652"},
	{"Saint Helena, Ascension and Tristan da Cunha", "St. Helena, Ascension und Tristan da Cunha", "SH", "SHN", "654"},
	{"Saint Kitts and Nevis", "St. Kitts und Nevis", "KN", "KNA", "659"},
	{"Saint Lucia", "St. Lucia", "LC", "LCA", "662"},
	{"Saint Martin", "Saint-Martin", "MF", "MAF", "663"},
	{"Saint Pierre and Miquelon", "Saint-Pierre und Miquelon", "PM", "SPM", "666"},
	{"Saint Vincent and the Grenadines", "St. Vincent und die Grenadinen", "VC", "VCT", "670"},
	{"Samoa", "Samoa", "WS", "WSM", "882"},
	{"San Marino", "San Marino", "SM", "SMR", "674"},
	{"Sao Tome and Principe", "São Tomé und Príncipe", "ST", "STP", "678"},
	{"Saudi Arabia", "Saudi-Arabien", "SA", "SAU", "682"},
	{"Senegal", "Senegal", "SN", "SEN", "686"},
	{"Serbia", "Serbien", "RS", "SRB", "688"},
	{"Seychelles", "Seychellen", "SC", "SYC", "690"},
	{"Sierra Leone", "Sierra Leone", "SL", "SLE", "694"},
	{"Singapore", "Singapur", "SG", "SGP", "702"},
	{"Sint Maarten", "Sint Maarten", "SX", "SXM", "534"},
	{"Slovakia", "Slowakei", "SK", "SVK", "703"},
	{"Slovenia", "Slowenien", "SI", "SVN", "705"},
	{"Solomon Islands", "Salomonen", "SB", "SLB", "090"},
	{"Somalia", "Somalia", "SO", "SOM", "706"},
	{"South Africa", "Südafrika", "ZA", "ZAF", "710"},
	{"South Georgia and the South Sandwich Islands", "Südgeorgien und die Südlichen Sandwichinseln", "GS", "SGS", "239"},
	{"South Sudan", "Südsudan", "SS", "SSD", "728"},
	{"Spain", "Spanien", "ES", "ESP", "724"},
	{"Sri Lanka", "Sri Lanka", "LK", "LKA", "144"},
	{"Sudan", "Sudan", "SD", "SDN", "729"},
	{"Suriname", "Suriname", "SR", "SUR", "740"},
	{"Svalbard and Jan Mayen", "Svalbard und Jan Mayen", "SJ", "SJM", "744"},
	{"Sweden", "Schweden", "SE", "SWE", "752"},
	{"Switzerland", "Schweiz", "CH", "CHE", "756"},
	{"Syria", "Syrien", "SY", "SYR", "760"},
	{"Taiwan", "Taiwan", "TW", "TWN", "158"},
	{"Tajikistan", "Tadschikistan", "TJ", "TJK", "762"},
	{"Tanzania", "Tansania", "TZ", "TZA", "834"},
	{"Thailand", "Thailand", "TH", "THA", "764"},
	{"Timor-Leste", "Osttimor", "TL", "TLS", "626"},
	{"Togo", "Togo", "TG", "TGO", "768"},
	{"Tokelau", "Tokelau", "TK", "TKL", "772"},
	{"Tonga", "Tonga", "TO", "TON", "776"},
	{"Trinidad and Tobago", "Trinidad und Tobago", "TT", "TTO", "780"},
	{"Tunisia", "Tunesien", "TN", "TUN", "788"},
	{"Turkey", "Türkei", "TR", "TUR", "792"},
	{"Turkmenistan", "Turkmenistan", "TM", "TKM", "795"},
	{"Turks and Caicos Islands", "Turks- und Caicosinseln", "TC", "TCA", "796"},
	{"Tuvalu", "Tuvalu", "TV", "TUV", "798"},
	{"Uganda", "Uganda", "UG", "UGA", "800"},
	{"Ukraine", "Ukraine", "UA", "UKR", "804"},
	{"United Arab Emirates", "Vereinigte Arabische Emirate", "AE", "ARE", "784"},
	{"United Kingdom", "Vereinigtes Königreich", "GB", "GBR", "826"},
	{"United States", "Vereinigte Staaten", "US", "USA", "840"},
	{"United States Minor Outlying Islands", "Kleinere Amerikanische Überseeinseln", "UM", "UMI", "581"},
	{"Uruguay", "Uruguay", "UY", "URY", "858"},
	{"Uzbekistan", "Usbekistan", "UZ", "UZB", "860"},
	{"Vanuatu", "Vanuatu", "VU", "VUT", "548"},
	{"Venezuela", "Venezuela", "VE", "VEN", "862"},
	{"Vietnam", "Vietnam", "VN", "VNM", "704"},
	{"British Virgin Islands", "Britische Jungferninseln", "VG", "VGB", "092"},
	{"U.S. Virgin Islands", "Amerikanische Jungferninseln", "VI", "VIR", "850"},
	{"Wallis and Futuna", "Wallis und Futuna", "WF", "WLF", "876"},
	{"Western Sahara", "Westsahara", "EH", "ESH", "732"},
	{"Yemen", "Jemen", "YE", "YEM", "887"},
	{"Zambia", "Sambia", "ZM", "ZMB", "894"},
	{"Zimbabwe", "Simbabwe", "ZW", "ZWE", "716"},
}
