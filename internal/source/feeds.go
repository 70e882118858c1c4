package source

// builtinFeeds 是内置的信源表，按地区分组。
// 生产环境可通过 SOURCES_FILE 指向 YAML 文件整体替换。
var builtinFeeds = map[string][]Source{
	"world": {
		{Name: "Reuters World", URL: "https://feeds.reuters.com/Reuters/worldNews", Priority: 1},
		{Name: "BBC World", URL: "https://feeds.bbci.co.uk/news/world/rss.xml", Priority: 1},
		{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml", Priority: 1},
		{Name: "The Guardian World", URL: "https://www.theguardian.com/world/rss", Priority: 1},
		{Name: "DW News", URL: "https://rss.dw.com/rdf/rss-en-all", Priority: 2},
		{Name: "France 24 English", URL: "https://www.france24.com/en/rss", Priority: 2},
		{Name: "NPR News", URL: "https://feeds.npr.org/1001/rss.xml", Priority: 2},
		{Name: "UN News", URL: "https://news.un.org/feed/subscribe/en/news/all/rss.xml", Priority: 2},
		{Name: "CGTN", URL: "https://www.cgtn.com/subscribe/rss/section/world.xml", Priority: 3},
		{Name: "Christian Science Monitor", URL: "https://rss.csmonitor.com/feeds/world", Priority: 3},
	},
	"middle_east": {
		{Name: "Middle East Eye", URL: "https://www.middleeasteye.net/rss", Priority: 1},
		{Name: "Iran International", URL: "https://www.iranintl.com/en/feed", Priority: 1},
		{Name: "Al Monitor", URL: "https://www.al-monitor.com/rss", Priority: 1},
		{Name: "BBC Middle East", URL: "https://feeds.bbci.co.uk/news/world/middle_east/rss.xml", Priority: 1},
		{Name: "Times of Israel", URL: "https://www.timesofisrael.com/feed/", Priority: 2},
		{Name: "Arab News", URL: "https://www.arabnews.com/rss.xml", Priority: 2},
		{Name: "Jerusalem Post", URL: "https://www.jpost.com/rss/rssfeedsfrontpage.aspx", Priority: 2},
		{Name: "TRT World", URL: "https://www.trtworld.com/rss", Priority: 2},
		{Name: "Daily Sabah", URL: "https://www.dailysabah.com/rssFeed/main", Priority: 3},
		{Name: "Rudaw", URL: "https://www.rudaw.net/english/rss", Priority: 3},
	},
	"europe": {
		{Name: "BBC Europe", URL: "https://feeds.bbci.co.uk/news/world/europe/rss.xml", Priority: 1},
		{Name: "Guardian Europe", URL: "https://www.theguardian.com/world/europe-news/rss", Priority: 1},
		{Name: "Kyiv Independent", URL: "https://kyivindependent.com/feed/", Priority: 1},
		{Name: "Euronews", URL: "https://www.euronews.com/rss", Priority: 2},
		{Name: "Politico Europe", URL: "https://www.politico.eu/feed/", Priority: 2},
		{Name: "Der Spiegel English", URL: "https://www.spiegel.de/international/index.rss", Priority: 2},
		{Name: "Moscow Times", URL: "https://www.themoscowtimes.com/rss/news", Priority: 2},
		{Name: "EUObserver", URL: "https://euobserver.com/rss.xml", Priority: 3},
		{Name: "Balkan Insight", URL: "https://balkaninsight.com/feed/", Priority: 3},
	},
	"asia": {
		{Name: "SCMP", URL: "https://www.scmp.com/rss/91/feed", Priority: 1},
		{Name: "BBC Asia", URL: "https://feeds.bbci.co.uk/news/world/asia/rss.xml", Priority: 1},
		{Name: "Nikkei Asia", URL: "https://asia.nikkei.com/rss", Priority: 2},
		{Name: "Channel News Asia", URL: "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml", Priority: 2},
		{Name: "The Diplomat", URL: "https://thediplomat.com/feed/", Priority: 2},
		{Name: "Japan Times", URL: "https://www.japantimes.co.jp/feed/", Priority: 2},
		{Name: "Straits Times", URL: "https://www.straitstimes.com/news/asia/rss.xml", Priority: 2},
		{Name: "Dawn Pakistan", URL: "https://www.dawn.com/feeds/home", Priority: 2},
		{Name: "Bangkok Post", URL: "https://www.bangkokpost.com/rss/data/topstories.xml", Priority: 3},
		{Name: "Taipei Times", URL: "https://www.taipeitimes.com/xml/index.rss", Priority: 3},
	},
	"americas": {
		{Name: "CNN World", URL: "http://rss.cnn.com/rss/edition_world.rss", Priority: 1},
		{Name: "Washington Post World", URL: "https://feeds.washingtonpost.com/rss/world", Priority: 1},
		{Name: "NYT World", URL: "https://rss.nytimes.com/services/xml/rss/nyt/World.xml", Priority: 1},
		{Name: "BBC Americas", URL: "https://feeds.bbci.co.uk/news/world/latin_america/rss.xml", Priority: 1},
		{Name: "NPR World", URL: "https://feeds.npr.org/1004/rss.xml", Priority: 2},
		{Name: "CBC News World", URL: "https://rss.cbc.ca/lineup/world.xml", Priority: 2},
		{Name: "Fox News World", URL: "https://moxie.foxnews.com/google-publisher/world.xml", Priority: 2},
		{Name: "LA Times World", URL: "https://www.latimes.com/world-nation/rss2.0.xml", Priority: 2},
		{Name: "Mexico News Daily", URL: "https://mexiconewsdaily.com/feed/", Priority: 3},
		{Name: "Buenos Aires Times", URL: "https://www.batimes.com.ar/feed", Priority: 3},
	},
	"africa": {
		{Name: "BBC Africa", URL: "https://feeds.bbci.co.uk/news/world/africa/rss.xml", Priority: 1},
		{Name: "All Africa", URL: "https://allafrica.com/tools/headlines/rdf/latest/headlines.rdf", Priority: 1},
		{Name: "The Africa Report", URL: "https://www.theafricareport.com/feed/", Priority: 2},
		{Name: "Mail & Guardian", URL: "https://mg.co.za/feed/", Priority: 2},
		{Name: "Daily Maverick", URL: "https://www.dailymaverick.co.za/feed/", Priority: 2},
		{Name: "Premium Times Nigeria", URL: "https://www.premiumtimesng.com/feed", Priority: 2},
		{Name: "Punch Nigeria", URL: "https://punchng.com/feed/", Priority: 3},
		{Name: "Guardian Nigeria", URL: "https://guardian.ng/feed/", Priority: 3},
	},
	"conflict": {
		{Name: "Liveuamap", URL: "https://liveuamap.com/rss", Priority: 1},
		{Name: "Defense One", URL: "https://www.defenseone.com/rss/", Priority: 2},
		{Name: "War on the Rocks", URL: "https://warontherocks.com/feed/", Priority: 2},
		{Name: "The War Zone", URL: "https://www.thedrive.com/the-war-zone/rss", Priority: 2},
		{Name: "Crisis Group", URL: "https://www.crisisgroup.org/feed/rss", Priority: 2},
		{Name: "Bellingcat", URL: "https://www.bellingcat.com/feed/", Priority: 2},
		{Name: "Stars and Stripes", URL: "https://www.stripes.com/rss", Priority: 3},
		{Name: "Military Times", URL: "https://www.militarytimes.com/arc/outboundfeeds/rss/", Priority: 3},
	},
	"economy": {
		{Name: "MarketWatch", URL: "https://feeds.marketwatch.com/marketwatch/topstories/", Priority: 1},
		{Name: "CNBC", URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html", Priority: 1},
		{Name: "Reuters Business", URL: "https://feeds.reuters.com/reuters/businessNews", Priority: 1},
		{Name: "Bloomberg", URL: "https://feeds.bloomberg.com/markets/news.rss", Priority: 1},
		{Name: "Economist", URL: "https://www.economist.com/finance-and-economics/rss.xml", Priority: 2},
		{Name: "Yahoo Finance", URL: "https://finance.yahoo.com/news/rssindex", Priority: 2},
		{Name: "Business Insider", URL: "https://www.businessinsider.com/rss", Priority: 2},
		{Name: "Zero Hedge", URL: "https://feeds.feedburner.com/zerohedge/feed", Priority: 3},
	},
	"technology": {
		{Name: "TechCrunch", URL: "https://techcrunch.com/feed/", Priority: 2},
		{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Priority: 2},
		{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index", Priority: 2},
		{Name: "Wired", URL: "https://www.wired.com/feed/rss", Priority: 2},
		{Name: "Hacker News", URL: "https://hnrss.org/frontpage", Priority: 2},
		{Name: "The Register", URL: "https://www.theregister.com/headlines.atom", Priority: 3},
		{Name: "Engadget", URL: "https://www.engadget.com/rss.xml", Priority: 3},
	},
	"science": {
		{Name: "Nature News", URL: "https://www.nature.com/nature.rss", Priority: 2},
		{Name: "Science Daily", URL: "https://www.sciencedaily.com/rss/all.xml", Priority: 2},
		{Name: "New Scientist", URL: "https://www.newscientist.com/feed/home/", Priority: 3},
		{Name: "Phys.org", URL: "https://phys.org/rss-feed/", Priority: 3},
		{Name: "Space.com", URL: "https://www.space.com/feeds/all", Priority: 3},
	},
	"health": {
		{Name: "WHO News", URL: "https://www.who.int/rss-feeds/news-english.xml", Priority: 1},
		{Name: "STAT News", URL: "https://www.statnews.com/feed/", Priority: 2},
		{Name: "The Lancet", URL: "https://www.thelancet.com/rssfeed/lancet_current.xml", Priority: 2},
		{Name: "Reuters Health", URL: "https://feeds.reuters.com/reuters/healthNews", Priority: 2},
		{Name: "Medical News Today", URL: "https://rss.medicalnewstoday.com/featurednews.xml", Priority: 3},
	},
	"climate": {
		{Name: "Carbon Brief", URL: "https://www.carbonbrief.org/feed/", Priority: 2},
		{Name: "Climate Home News", URL: "https://www.climatechangenews.com/feed/", Priority: 2},
		{Name: "Inside Climate News", URL: "https://insideclimatenews.org/feed/", Priority: 2},
		{Name: "Guardian Climate", URL: "https://www.theguardian.com/environment/climate-crisis/rss", Priority: 2},
		{Name: "Yale E360", URL: "https://e360.yale.edu/feed.xml", Priority: 3},
	},
}
