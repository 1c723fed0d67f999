// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package tagengine

// tagRules is the full keyword-tag table. Most entries are unconditional
// (context == ""); a handful require a nearby context word within
// maxWordDistance words to avoid tagging posts where the keyword is an
// unrelated acronym collision ("go" the verb, "b2b" in an unrelated
// sentence, "sas" meaning something else entirely).
var tagRules = []ruleSpec{
	// Software Engineering
	{tag: "Rust", pattern: `(?i)\brust\b`},
	{tag: "Python", pattern: `(?i)\bpython\b`},
	{tag: "JavaScript", pattern: `(?i)\bjavascript\b|(^|[^.])\bjs\b`},
	{tag: "TypeScript", pattern: `(?i)\btypescript\b|(^|[^.])\bts\b`},
	{tag: "Go", pattern: `(?i)\bgolang\b`},
	{tag: "Go", pattern: `(?i)\bgo\b`, context: `(?i)\blanguage\b`, maxWordDistance: 5},
	{tag: "Java", pattern: `(?i)\bjava\b`, forbiddenContext: `(?i)\bscript\b`, forbiddenMaxWordDistance: 1},
	{tag: "C++", pattern: `(?i)\bc\+\+\b`},
	{tag: "C#", pattern: `(?i)\bc#\b`},
	{tag: "Ruby", pattern: `(?i)\bruby\b`},
	{tag: "PHP", pattern: `(?i)\bphp\b`},
	{tag: "Swift", pattern: `(?i)\bswift\b`},
	{tag: "Kotlin", pattern: `(?i)\bkotlin\b`},
	{tag: "Scala", pattern: `(?i)\bscala\b`},
	{tag: "Elixir", pattern: `(?i)\belixir\b`},
	{tag: "Haskell", pattern: `(?i)\bhaskell\b`},
	{tag: "Erlang", pattern: `(?i)\berlang\b`},
	{tag: "Clojure", pattern: `(?i)\bclojure\b`},

	// Frameworks & Libraries
	{tag: "React", pattern: `(?i)\breact\b`},
	{tag: "Vue", pattern: `(?i)\bvue\b`},
	{tag: "Angular", pattern: `(?i)\bangular\b`},
	{tag: "Svelte", pattern: `(?i)\bsvelte\b`},
	{tag: "Next.js", pattern: `(?i)\bnext\.?js\b`},
	{tag: "Nuxt", pattern: `(?i)\bnuxt\b`},
	{tag: "Node.js", pattern: `(?i)\bnode\.?js\b`},
	{tag: "Django", pattern: `(?i)\bdjango\b`},
	{tag: "Flask", pattern: `(?i)\bflask\b`},
	{tag: "FastAPI", pattern: `(?i)\bfastapi\b`},
	{tag: "Spring", pattern: `(?i)\bspring\b`},
	{tag: ".NET", pattern: `(?i)\.net\b`},
	{tag: "Ruby on Rails", pattern: `(?i)\brails\b`},
	{tag: "Laravel", pattern: `(?i)\blaravel\b`},
	{tag: "Tailwind", pattern: `(?i)\btailwind\b`},
	{tag: "TensorFlow", pattern: `(?i)\btensorflow\b`},
	{tag: "PyTorch", pattern: `(?i)\bpytorch\b`},

	// Infrastructure & Tools
	{tag: "Docker", pattern: `(?i)\bdocker\b`},
	{tag: "Kubernetes", pattern: `(?i)\bkubernetes\b|k8s\b`},
	{tag: "AWS", pattern: `(?i)\baws\b`},
	{tag: "Azure", pattern: `(?i)\bazure\b`},
	{tag: "GCP", pattern: `(?i)\bgcp\b|google cloud\b`},
	{tag: "Terraform", pattern: `(?i)\bterraform\b`},
	{tag: "Linux", pattern: `(?i)\blinux\b`},
	{tag: "Git", pattern: `(?i)\bgit\b`},
	{tag: "SQL", pattern: `(?i)\bsql\b`},
	{tag: "NoSQL", pattern: `(?i)\bnosql\b`},
	{tag: "Redis", pattern: `(?i)\bredis\b`},
	{tag: "Kafka", pattern: `(?i)\bkafka\b`},
	{tag: "GraphQL", pattern: `(?i)\bgraphql\b`},
	{tag: "REST", pattern: `(?i)\brest\b`},

	// Data & Analytics
	{tag: "Data Science", pattern: `(?i)\bdata scien(ce|tist)\b`},
	{tag: "Machine Learning", pattern: `(?i)\bmachine learning\b|\bml\b`},
	{tag: "AI", pattern: `(?i)\bartificial intelligence\b|\bai\b`},
	{tag: "NLP", pattern: `(?i)\bnlp\b`},
	{tag: "Statistics", pattern: `(?i)\bstatistics\b`},
	{tag: "Pandas", pattern: `(?i)\bpandas\b`},
	{tag: "NumPy", pattern: `(?i)\bnumpy\b`},
	{tag: "Tableau", pattern: `(?i)\btableau\b`},
	{tag: "Power BI", pattern: `(?i)\bpower bi\b`},
	{tag: "SQL Server", pattern: `(?i)\bsql server\b`},
	{tag: "PostgreSQL", pattern: `(?i)\bpostgresql\b|\bpostgres\b`},

	// Product & Design
	{tag: "Product Management", pattern: `(?i)\bproduct manage(r|ment)\b|\bpm\b`},
	{tag: "Product Owner", pattern: `(?i)\bproduct owner\b`},
	{tag: "UI", pattern: `(?i)\bui\b|\buser interface\b`},
	{tag: "UX", pattern: `(?i)\bux\b|\buser experience\b`},
	{tag: "Figma", pattern: `(?i)\bfigma\b`},
	{tag: "Sketch", pattern: `(?i)\bsketch\b`},
	{tag: "Graphic Design", pattern: `(?i)\bgraphic design\b`},

	// Marketing & Sales (strict)
	{tag: "SEO", pattern: `(?i)\bseo\b`, context: `(?i)\b(specialist|optimization|ranking|keyword|content|audit|technical)\b`, maxWordDistance: 15},
	{tag: "SEM", pattern: `(?i)\bsem\b`, context: `(?i)\b(paid|search|marketing|campaign|ppc|ad)\b`, maxWordDistance: 15},
	{tag: "Content Marketing", pattern: `(?i)\bcontent marketing\b`},
	{tag: "Copywriting", pattern: `(?i)\bcopywriting\b`},
	{tag: "Social Media", pattern: `(?i)\bsocial media\b`},
	{tag: "Business Development", pattern: `(?i)\bbusiness development\b|\bbdr\b|\bsdr\b`},
	{tag: "Account Management", pattern: `(?i)\baccount manage(r|ment)\b`},
	{tag: "CRM", pattern: `(?i)\bcrm\b`},
	{tag: "Salesforce", pattern: `(?i)\bsalesforce\b`},
	{tag: "UGC", pattern: `(?i)\bugc\b|user generated content\b`, context: `(?i)\b(marketing|content|campaign|social|creator)\b`, maxWordDistance: 15},
	{tag: "CRO", pattern: `(?i)\bcro\b|conversion rate optimization\b`, context: `(?i)\b(optimization|experiment|testing|growth|marketing)\b`, maxWordDistance: 15},
	{tag: "PPC", pattern: `(?i)\bppc\b|pay[-\s]per[-\s]click\b`, context: `(?i)\b(campaign|ad|paid|marketing|search)\b`, maxWordDistance: 15},
	{tag: "Go-to-Market", pattern: `(?i)\bgtm\b|go[-\s]to[-\s]market\b`, context: `(?i)\b(launch|product|market|sales)\b`, maxWordDistance: 15},

	// Software Engineering & DevOps
	{tag: "Jenkins", pattern: `(?i)\bjenkins\b`},
	{tag: "GitLab", pattern: `(?i)\bgitlab\b`},
	{tag: "GitHub Actions", pattern: `(?i)\bgithub actions\b`},
	{tag: "CircleCI", pattern: `(?i)\bcircleci\b`},
	{tag: "Ansible", pattern: `(?i)\bansible\b`},
	{tag: "Pulumi", pattern: `(?i)\bpulumi\b`},
	{tag: "Prometheus", pattern: `(?i)\bprometheus\b`},
	{tag: "Grafana", pattern: `(?i)\bgrafana\b`},
	{tag: "Elasticsearch", pattern: `(?i)\belk stack\b|\belasticsearch\b`},
	{tag: "Splunk", pattern: `(?i)\bsplunk\b`},
	{tag: "NGINX", pattern: `(?i)\bnginx\b`},
	{tag: "Apache", pattern: `(?i)\bapache\b`},
	{tag: "Serverless", pattern: `(?i)\bserverless\b`},
	{tag: "Cassandra", pattern: `(?i)\bcassandra\b`},
	{tag: "MongoDB", pattern: `(?i)\bmongodb\b`},
	{tag: "MariaDB", pattern: `(?i)\bmariadb\b`},
	{tag: "Snowflake", pattern: `(?i)\bsnowflake\b`, context: `(?i)\b(data|lake|warehouse|cloud|analytics|sql|computing)\b`, maxWordDistance: 15},
	{tag: "Databricks", pattern: `(?i)\bdatabricks\b`},
	{tag: "BigQuery", pattern: `(?i)\bbigquery\b`},
	{tag: "Airflow", pattern: `(?i)\bairflow\b`},
	{tag: "dbt", pattern: `(?i)\bdbt\b`},

	// Telehealth & Health IT
	{tag: "Telehealth", pattern: `(?i)\btelehealth\b|\btelemedicine\b`},
	{tag: "Epic Systems", pattern: `(?i)\bepic\b`, context: `(?i)\b(systems|electronic|health|record|software|ehr|emr|certified|analyst|telehealth|platform)\b`, maxWordDistance: 15},
	{tag: "Cerner", pattern: `(?i)\bcerner\b`},
	{tag: "EHR/EMR", pattern: `(?i)\behr\b|\bemr\b`},
	{tag: "HL7", pattern: `(?i)\bhl7\b`},
	{tag: "FHIR", pattern: `(?i)\bfhir\b`},
	{tag: "DICOM", pattern: `(?i)\bdicom\b`},
	{tag: "PACS", pattern: `(?i)\bpacs\b`},
	{tag: "PointClickCare", pattern: `(?i)\bpointclickcare\b`},
	{tag: "Practice Fusion", pattern: `(?i)\bpractice fusion\b`},
	{tag: "HIPAA Compliance", pattern: `(?i)\bhipaa\b`, context: `(?i)\b(compliance|security|privacy|regulation|standards|training)\b`, maxWordDistance: 15},
	{tag: "MedTech", pattern: `(?i)\bmedtech\b`},
	{tag: "Biotech", pattern: `(?i)\bbiotech\b`},
	{tag: "Bioinformatics", pattern: `(?i)\bbioinformatics\b`},
	{tag: "Clinical Trials", pattern: `(?i)\bclinical trials\b`},
	{tag: "Pharmacovigilance", pattern: `(?i)\bpharmacovigilance\b`},

	// HealthTech specifics
	{tag: "Athenahealth", pattern: `(?i)\bathenahealth\b`},
	{tag: "Allscripts", pattern: `(?i)\ballscripts\b`},
	{tag: "Meditech", pattern: `(?i)\bmeditech\b`},
	{tag: "eClinicalWorks", pattern: `(?i)\beclinicalworks\b`},
	{tag: "CareCloud", pattern: `(?i)\bcarecloud\b`},
	{tag: "NextGen Health", pattern: `(?i)\bnextgen\b`},

	// Business Technologies & SaaS
	{tag: "SAP", pattern: `(?i)\bsap\b`},
	{tag: "Oracle ERP", pattern: `(?i)\boracle erp\b`},
	{tag: "NetSuite", pattern: `(?i)\bnetsuite\b`},
	{tag: "Workday", pattern: `(?i)\bworkday\b`},
	{tag: "ServiceNow", pattern: `(?i)\bservicenow\b`},
	{tag: "HubSpot", pattern: `(?i)\bhubspot\b`},
	{tag: "Marketo", pattern: `(?i)\bmarketo\b`},
	{tag: "Pardot", pattern: `(?i)\bpardot\b`},
	{tag: "Zendesk", pattern: `(?i)\bzendesk\b`},
	{tag: "Intercom", pattern: `(?i)\bintercom\b`},
	{tag: "Shopify", pattern: `(?i)\bshopify\b`},
	{tag: "Magento", pattern: `(?i)\bmagento\b`},
	{tag: "WooCommerce", pattern: `(?i)\bwoo?commerce\b`},
	{tag: "Slack", pattern: `(?i)\bslack\b`},
	{tag: "MS Teams", pattern: `(?i)\bmicrosoft teams\b`},
	{tag: "Jira", pattern: `(?i)\bjira\b`},
	{tag: "Confluence", pattern: `(?i)\bconfluence\b`},
	{tag: "Trello", pattern: `(?i)\btrello\b`},
	{tag: "Asana", pattern: `(?i)\basana\b`},
	{tag: "Monday.com", pattern: `(?i)\bmonday\.com\b`},
	{tag: "Notion", pattern: `(?i)\bnotion\b`},
	{tag: "ERP", pattern: `(?i)\berp\b`},
	{tag: "Google Workspace", pattern: `(?i)\bgoogle (suite|workspace|docs|sheets|slides)\b`},
	{tag: "Microsoft Office", pattern: `(?i)\bmicrosoft (office|excel|word|powerpoint)\b|\bexcel\b|\bpowerpoint\b`},

	// Creative & UI/UX specifics
	{tag: "Adobe XD", pattern: `(?i)\badobe xd\b`},
	{tag: "Framer", pattern: `(?i)\bframer\b`},
	{tag: "Principle", pattern: `(?i)\bprinciple\b`},
	{tag: "Zeplin", pattern: `(?i)\bzeplin\b`},
	{tag: "InVision", pattern: `(?i)\binvision\b`},
	{tag: "CorelDraw", pattern: `(?i)\bcoreldraw\b`},

	// Design & Creative
	{tag: "Adobe CC", pattern: `(?i)\badobe (creative cloud|suite)\b`},
	{tag: "Photoshop", pattern: `(?i)\bphotoshop\b`},
	{tag: "Illustrator", pattern: `(?i)\billustrator\b`},
	{tag: "InDesign", pattern: `(?i)\bindesign\b`},
	{tag: "After Effects", pattern: `(?i)\bafter effects\b`},
	{tag: "Premiere Pro", pattern: `(?i)\bpremiere pro\b`},
	{tag: "Canva", pattern: `(?i)\bcanva\b`},
	{tag: "Webflow", pattern: `(?i)\bwebflow\b`},
	{tag: "Blender", pattern: `(?i)\bblender\b`},
	{tag: "Unity", pattern: `(?i)\bunity(3d)?\b`, context: `(?i)\b(engine|game|developer|developing|design|c#|real[-\s]time|vr|ar)\b`, maxWordDistance: 15},
	{tag: "Unreal Engine", pattern: `(?i)\bunreal engine\b`},

	// Engineering & Science
	{tag: "Robotics", pattern: `(?i)\brobotics\b`},
	{tag: "ROS", pattern: `(?i)\bros\b`, context: `(?i)\b(robot|robotics|operating|system|kinematics|navigation|control|developer|simulation)\b`, maxWordDistance: 15},
	{tag: "CAD", pattern: `(?i)\bcad\b`, context: `(?i)\b(computer|aided|design|software|autocad|solidworks|modelling|drawing|drafting|technical)\b`, maxWordDistance: 15},
	{tag: "SolidWorks", pattern: `(?i)\bsolidworks\b`},
	{tag: "AutoCAD", pattern: `(?i)\bautocad\b`},
	{tag: "MATLAB", pattern: `(?i)\bmatlab\b`, context: `(?i)\b(simulation|programming|script|algorithm|signal|processing|mathworks|academic|experience|familiarity)\b`, maxWordDistance: 15},
	{tag: "LabVIEW", pattern: `(?i)\blabview\b`},
	{tag: "FPGA", pattern: `(?i)\bfpga\b`, context: `(?i)\b(design|verilog|vhdl|logic|hardware|circuit|programmable|gate)\b`, maxWordDistance: 15},
	{tag: "Verilog", pattern: `(?i)\bverilog\b`},
	{tag: "VHDL", pattern: `(?i)\bvhdl\b`},
	{tag: "RTOS", pattern: `(?i)\brtos\b|real[-\s]time operating system\b`, context: `(?i)\b(embedded|kernel|task|scheduler|interrupt|thread|safety|critical)\b`, maxWordDistance: 15},
	{tag: "Embedded C", pattern: `(?i)\bembedded c\b`},
	{tag: "PLC", pattern: `(?i)\bplc\b|programmable logic controller\b`, context: `(?i)\b(automation|control|industrial|programming|ladder|logic|scada|hmi)\b`, maxWordDistance: 15},
	{tag: "SCADA", pattern: `(?i)\bscada\b`},
	{tag: "ANSYS", pattern: `(?i)\bansys\b`},

	// Engineering/Industrial specifics
	{tag: "Solid Edge", pattern: `(?i)\bsolid edge\b`},
	{tag: "Siemens NX", pattern: `(?i)\bsiemens nx\b`},
	{tag: "CATIA", pattern: `(?i)\bcatia\b`},
	{tag: "Fusion 360", pattern: `(?i)\bfusion 360\b`},
	{tag: "Teamcenter", pattern: `(?i)\bteamcenter\b`},
	{tag: "Mastercam", pattern: `(?i)\bmastercam\b`},
	{tag: "Altium Designer", pattern: `(?i)\baltium\b`},
	{tag: "OrCAD", pattern: `(?i)\borcad\b`},
	{tag: "KiCad", pattern: `(?i)\bkicad\b`},
	{tag: "Revit", pattern: `(?i)\brevit\b`},

	// Finance & Data
	{tag: "Bloomberg Terminal", pattern: `(?i)\bbloomberg\b`},
	{tag: "FactSet", pattern: `(?i)\bfactset\b`},
	{tag: "CapitalLine", pattern: `(?i)\bcapitalline\b`},
	{tag: "Morningstar", pattern: `(?i)\bmorningstar\b`},
	{tag: "STATA", pattern: `(?i)\bstata\b`, context: `(?i)\b(statistical|data|analysis|research|quantitative|survey|econometrics)\b`, maxWordDistance: 15},
	{tag: "SAS", pattern: `(?i)\bsas\b`, context: `(?i)\b(statistical|programming|data|analytics|business|intelligence|software)\b`, maxWordDistance: 15},

	// FinTech specifics
	{tag: "Reuters Eikon", pattern: `(?i)\breuters eikon\b`},
	{tag: "QuickBooks", pattern: `(?i)\bquickbooks\b`},
	{tag: "Xero", pattern: `(?i)\bxero\b`},
	{tag: "Sage", pattern: `(?i)\bsage (intacct|50|100|200|300|erp)\b`},
	{tag: "Intacct", pattern: `(?i)\bintacct\b`},
	{tag: "Stripe", pattern: `(?i)\bstripe\b`},
	{tag: "Adyen", pattern: `(?i)\badyen\b`},
	{tag: "Plaid", pattern: `(?i)\bplaid\b`},
	{tag: "Square", pattern: `(?i)\bsquare\b`},

	{tag: "Blockchain", pattern: `(?i)\bblockchain\b`},
	{tag: "Solidity", pattern: `(?i)\bsolidity\b`},
	{tag: "Smart Contracts", pattern: `(?i)\bsmart contracts\b`},
	{tag: "Ethereum", pattern: `(?i)\bethereum\b`},
	{tag: "Bitcoin", pattern: `(?i)\bbitcoin\b`},
	{tag: "DeFi", pattern: `(?i)\bdefi\b|decentralized finance\b`},
	{tag: "NFT", pattern: `(?i)\bnft\b`},

	// Operations & General Jargon
	{tag: "Agile", pattern: `(?i)\bagile\b`, context: `(?i)\b(scrum|kanban|methodology|environment|team|workflow|sprint|coach|practice|principles)\b`, maxWordDistance: 15},
	{tag: "Scrum", pattern: `(?i)\bscrum\b`},
	{tag: "Kanban", pattern: `(?i)\bkanban\b`},
	{tag: "Lean", pattern: `(?i)\blean\b`, context: `(?i)\b(manufacturing|six sigma|process|production|principles|management|improvement|startup)\b`, maxWordDistance: 15},
	{tag: "Six Sigma", pattern: `(?i)\bsix sigma\b`},
	{tag: "PMP", pattern: `(?i)\bproject management professional\b|\bpmp\b`},
	{tag: "Public Relations", pattern: `(?i)\bpr\b`, context: `(?i)\b(relations|media|communications|campaign|press|outreach|social|strategy)\b`, maxWordDistance: 15},
	{tag: "Copywriting", pattern: `(?i)\bcopywriting\b`},
	{tag: "Technical Writing", pattern: `(?i)\btechnical writing\b`},
	{tag: "Grant Writing", pattern: `(?i)\bgrant writing\b`},
	{tag: "CSR", pattern: `(?i)\bcorporate social responsibility\b|\bcsr\b`},
	{tag: "ESG", pattern: `(?i)\besg\b|environmental social governance\b`},
	{tag: "Customer Success", pattern: `(?i)\bcustomer success\b`},
	{tag: "SaaS", pattern: `(?i)\bsaas\b`, context: `(?i)\b(software|platform|cloud|delivery|product|business|model|sales)\b`, maxWordDistance: 15},
	{tag: "PaaS", pattern: `(?i)\bpaas\b|platform as a service\b`},
	{tag: "IaaS", pattern: `(?i)\biaas\b|infrastructure as a service\b`},
	{tag: "FinOps", pattern: `(?i)\bfinops\b`},
	{tag: "RevOps", pattern: `(?i)\brevops\b`},
	{tag: "MarkOps", pattern: `(?i)\bmarkops\b`},
	{tag: "SalesOps", pattern: `(?i)\bsalesops\b`},

	{tag: "B2B", pattern: `(?i)\bb2b\b`, context: `(?i)\b(sales|marketing|saas|client|account|business)\b`, maxWordDistance: 15},
	{tag: "B2C", pattern: `(?i)\bb2c\b`, context: `(?i)\b(consumer|marketing|sales|brand|customer|retail)\b`, maxWordDistance: 15},

	{tag: "Influencer Marketing", pattern: `(?i)\binfluencer\b`},
	{tag: "Affiliate Marketing", pattern: `(?i)\baffiliate\b`, context: `(?i)\b(program|marketing|network|partner)\b`, maxWordDistance: 15},

	// Finance & Accounting (strict)
	{tag: "Accounting", pattern: `(?i)\baccounting\b`, context: `(?i)\b(staff|clerk|financial|ledger|payable|receivable|reconciliation|cpa|intern)\b`, maxWordDistance: 15},
	{tag: "CPA", pattern: `(?i)\bcpa\b`},
	{tag: "Audit", pattern: `(?i)\baudit\b`, context: `(?i)\b(internal|external|financial|risk|compliance|it|process|assurance)\b`, maxWordDistance: 15},
	{tag: "Tax", pattern: `(?i)\btax\b`, context: `(?i)\b(compliance|return|filing|income|corporate|sales|provision|indirect|salt)\b`, maxWordDistance: 15},
	{tag: "Investment Banking", pattern: `(?i)\binvestment banking\b`},
	{tag: "Trading", pattern: `(?i)\btrading\b`},
	{tag: "FP&A", pattern: `(?i)\bfp&a\b`},
	{tag: "Treasury", pattern: `(?i)\btreasury\b`},
	{tag: "Venture Capital", pattern: `(?i)\bventure capital\b|\bvc\b`},
	{tag: "Private Equity", pattern: `(?i)\bprivate equity\b|\bpe\b`},

	// Operations & HR
	{tag: "Supply Chain", pattern: `(?i)\bsupply chain\b`},
	{tag: "Logistics", pattern: `(?i)\blogistics\b`},
	{tag: "Project Management", pattern: `(?i)\bproject manage(r|ment)\b`},
	{tag: "Program Management", pattern: `(?i)\bprogram manage(r|ment)\b`},
	{tag: "Human Resources", pattern: `(?i)\bhuman resources\b|\bhr\b`},
	{tag: "Recruiting", pattern: `(?i)\brecruiting\b|\brecruiter\b`},
	{tag: "Talent Acquisition", pattern: `(?i)\btalent acquisition\b`},
	{tag: "People Ops", pattern: `(?i)\bpeople ops\b`},

	// Legal
	{tag: "Compliance", pattern: `(?i)\bcompliance\b`, context: `(?i)\b(regulatory|legal|risk|policy|standard|gdpr|hipaa|soc2|analyst)\b`, maxWordDistance: 15},
	{tag: "Litigation", pattern: `(?i)\blitigation\b`},
	{tag: "Contract Law", pattern: `(?i)\bcontract law\b`},
	{tag: "Intellectual Property", pattern: `(?i)\bintellectual property\b|\bip\b`},
	{tag: "Paralegal", pattern: `(?i)\bparalegal\b`},
	{tag: "Attorney", pattern: `(?i)\battorney\b`},

	// LegalTech specifics
	{tag: "LexisNexis", pattern: `(?i)\blexisnexis\b|\blexis nexis\b`},
	{tag: "Westlaw", pattern: `(?i)\bwestlaw\b`},
	{tag: "Relativity", pattern: `(?i)\brelativity\b`},
	{tag: "Clio", pattern: `(?i)\bclio\b`},
	{tag: "Everlaw", pattern: `(?i)\beverlaw\b`},
	{tag: "iManage", pattern: `(?i)\bimanage\b`},
	{tag: "NetDocuments", pattern: `(?i)\bnetdocuments\b`},
	{tag: "Ironclad", pattern: `(?i)\bironclad\b`},
	{tag: "Bloomberg Law", pattern: `(?i)\bbloomberg law\b`},

	// Security & Cybersecurity specifics
	{tag: "Burp Suite", pattern: `(?i)\bburp suite\b`},
	{tag: "Metasploit", pattern: `(?i)\bmetasploit\b`},
	{tag: "Wireshark", pattern: `(?i)\bwireshark\b`},
	{tag: "Nessus", pattern: `(?i)\bnessus\b`},
	{tag: "Okta", pattern: `(?i)\bokta\b`},
	{tag: "CrowdStrike", pattern: `(?i)\bcrowdstrike\b`},
	{tag: "SentinelOne", pattern: `(?i)\bsentinelone\b`},

	// HR & Recruiter Tech specifics
	{tag: "Greenhouse", pattern: `(?i)\bgreenhouse\b`},
	{tag: "Lever", pattern: `(?i)\blever\b`},
	{tag: "Ashby", pattern: `(?i)\bashby\b`},
	{tag: "BambooHR", pattern: `(?i)\bbamboohr\b`},
	{tag: "Rippling", pattern: `(?i)\brippling\b`},

	// Hardware & Science
	{tag: "Electrical Engineering", pattern: `(?i)\belectrical engineering\b`},
	{tag: "Mechanical Engineering", pattern: `(?i)\bmechanical engineering\b`},
	{tag: "Civil Engineering", pattern: `(?i)\bcivil engineering\b`},
	{tag: "Chemical Engineering", pattern: `(?i)\bchemical engineering\b`},
	{tag: "Biomedical", pattern: `(?i)\bbiomedical\b`},

	// General & Benefits
	{tag: "LGBTQ+ Friendly", pattern: `(?i)\blgbtq(\+|\b)`},
	{tag: "Paid", pattern: `(?i)\bpaid (internship|role|position)\b`},
	{tag: "Visa Sponsorship", pattern: `(?i)\bvisa sponsorship\b`},
	{tag: "Remote", pattern: `(?i)\bremote\b`},
	{tag: "Hybrid", pattern: `(?i)\bhybrid\b`},
}
