package extract

// Tag and attribute alias tables for the LE (ЕГРЮЛ) and SP (ЕГРИП)
// recognition table of spec §4.3. Each list mixes the ASCII-gloss
// spellings used in the specification's prose with the Cyrillic
// spellings the government schema and the spec's own concrete
// scenarios actually use on the wire — whichever spelling a given
// input file carries, "first present wins" still applies across the
// combined list.

// LE record root and identity.
var (
	leRecordRootTags = []string{"СвЮЛ", "SvUL"}
	ogrnAttrs        = []string{"ОГРН", "OGRN"}
	ogrnDateAttrs    = []string{"ДатаОГРН", "DataOGRN"}
	innAttrs         = []string{"ИНН", "INN"}
	kppAttrs         = []string{"КПП", "KPP"}
	statusAttrs      = []string{"СтатусЮЛ", "StatusUL", "Статус", "Status"}
	opfCodeAttrs     = []string{"КодОПФ", "KodOPF"}
	opfNameAttrs     = []string{"ПолнНаимОПФ", "PolnNaimOPF", "НаимОПФ", "NaimOPF"}
)

// LE naming block.
var (
	leNamingTags     = []string{"СвНаим", "СвНаимЮЛ", "SvNaim", "SvNaimULcls"}
	fullNameAttrs    = []string{"НаимПолн", "NaimPoln", "НаимПолнЮЛ", "NaimULPolnAttr"}
	shortNameAttrs   = []string{"НаимСокр", "NaimSokr"}
	brandNameAttrs   = []string{"НаимБренд", "NaimBrand"}
)

// Address block (LE + SP share most of this table; SP adds a few
// aliases handled in egrip.go).
var (
	addressTags     = []string{"СвАдресЮЛ", "СвАдрес", "SvAdresUL", "SvAdres"}
	adresRFTags     = []string{"АдресРФ", "AdresRF"}
	postalCodeAttrs = []string{"Индекс", "Index"}
	regionCodeAttrs = []string{"КодРегион", "KodRegion"}
	regionTags      = []string{"Регион", "Region"}
	districtTags    = []string{"Район", "Rayon"}
	cityTags        = []string{"Город", "Gorod"}
	localityTags    = []string{"НаселПункт", "НаселенПункт", "NaselPunkt"}
	streetTags      = []string{"Улица", "Ulica"}
	streetTypeAttrs = []string{"Тип", "Type"}
	streetNameAttrs = []string{"Наим", "Naim"}
	houseAttrs      = []string{"Дом", "Dom"}
	buildingAttrs   = []string{"Корп", "Korp"}
	flatAttrs       = []string{"Кварт", "Офис", "Kvart", "Ofis"}
	fiasAttrs       = []string{"ИдНом", "IdNom", "FIAS"}
	kladrAttrs      = []string{"Кладр", "KLADR"}
	fullAddrAttrs   = []string{"АдресПолн", "AdresPoln"}
)

// Capital.
var (
	capitalTags    = []string{"СвУстКап", "SvUstKap"}
	capitalSumAttrs = []string{"СумКап", "SumKap"}
	capitalValAttrs = []string{"НаимВал", "NaimVal"}
)

// Activities.
var (
	okvedBlockTags  = []string{"СвОКВЭД", "SvOKVED"}
	okvedMainTags   = []string{"СвОКВЭДОсн", "SvOKVEDOsn"}
	okvedExtraTags  = []string{"СвОКВЭДДоп", "SvOKVEDDop"}
	okvedCodeAttrs  = []string{"КодОКВЭД", "KodOKVED"}
	okvedNameAttrs  = []string{"НаимОКВЭД", "NaimOKVED"}
	okvedVerAttrs   = []string{"ПрВерсОКВЭД", "VersOKVED"}
)

// Head officer (LE).
var (
	headOfficerTags  = []string{"СведДолжнФЛ", "СвЛицЕИО", "СведДол662", "SvedDolzhnFL", "SvLicEIO", "SvedDol662"}
	headPersonTags   = []string{"СвФЛ", "ФИОРус", "ФИО", "SvFL", "FIORus", "FIO"}
	headPositionAttrs = []string{"СвДолжн", "SvDolzhn"}
	headGRNAttrs     = []string{"ГРНДата", "ГРНДатаПерв", "GRNData", "GRNDataPerv"}
)

// Founders (LE).
var (
	foundersBlockTags = []string{"СвУчредит", "SvUchredit"}
	founderPersonTags = []string{"УчрФЛ", "UchrFL"}
	founderDomesticTags = []string{"УчрЮЛРос", "UchrULRos"}
	founderForeignTags = []string{"УчрЮЛИн", "UchrULIn"}
	founderPublicTags = []string{"УчрРФ", "УчрСубМО", "UchrRF", "UchrSubMO"}
	founderFundTags   = []string{"УчрПИФ", "UchrPIF"}
	shareTags         = []string{"ДоляУстКап", "DolyaUstKap"}
	shareNominalAttrs = []string{"НоминСтоим", "NominStoim"}
	shareNumerAttrs   = []string{"Числит", "Chislit"}
	shareDenomAttrs   = []string{"Знаменат", "Znamenat"}
	sharePercentAttrs = []string{"ДоляПроцент", "DoljaProcent"}
)

// Registration / tax / pension / FSS authorities.
var (
	regOrgTags    = []string{"СвРегОрг", "SvRegOrg"}
	regOrgCodeAttrs = []string{"КодНО", "КодОрг", "KodNO", "KodOrg"}
	regOrgNameAttrs = []string{"НаимНО", "NaimNO"}

	taxRegTags    = []string{"СвУчетНО", "СвНалУч", "SvUchetNO", "SvNalUch"}
	pensionRegTags = []string{"СвРегПФ", "SvRegPF"}
	pensionOrgTags = []string{"СвОргПФ", "SvOrgPF"}
	fssRegTags    = []string{"СвРегФСС", "SvRegFSS"}
	fssOrgTags    = []string{"СвОргФСС", "SvOrgFSS"}

	taxRegDateAttrs = []string{"ДатаПост", "DataPost"}
	taxRegNumAttrs  = []string{"НомерСв", "NomerSv"}
)

// History (LE uses SvZapis/SvZapEGRUL, SP uses SvZapEGRIP — GRN attr differs).
var (
	leHistoryTags   = []string{"СвЗапис", "СвЗапЕГРЮЛ", "SvZapis", "SvZapEGRUL"}
	leHistoryGRNAttrs = []string{"ГРН", "GRN"}
	historyDateAttrs = []string{"ДатаЗап", "DataZap"}
	historyReasonTags = []string{"ВидЗап", "VidZap"}
	historyReasonCodeAttrs = []string{"КодВидЗап", "KodVidZap"}
	historyReasonNameAttrs = []string{"НаимВидЗап", "NaimVidZap"}
	historyRegOrgTags = []string{"СвРегОрг", "РегОрг", "SvRegOrg", "RegOrg"}
	historyCertTags = []string{"СвСвид", "SvSvid"}
	certSeriesAttrs = []string{"Серия", "Seria"}
	certNumberAttrs = []string{"Номер", "Nomer"}
	certDateAttrs   = []string{"ДатаВыдСвид", "DataVydSvid"}
)

// Contact and termination.
var (
	contactTags      = []string{"СвКонт", "СведКонт", "SvKont", "SvedKont"}
	emailTags        = []string{"E-mail", "Email"}
	terminationTags  = []string{"СвПрекрЮЛ", "SvPrekrUL"}
	terminationDateAttrs = []string{"ДатаПрекращ", "Дата", "DataPrekrasch", "Data"}
	terminationMethodAttrs = []string{"СпособПрекращ", "SposPrekrasch"}
)

// SP-specific.
var (
	spRecordRootTags = []string{"СвИП", "SvIP"}
	ogrnipAttrs      = []string{"ОГРНИП", "OGRNIP"}
	ogrnipDateAttrs  = []string{"ДатаОГРНИП", "ДатаРег", "DataOGRNIP", "DataReg"}
	dataVypAttrs     = []string{"ДатаВып", "DataVyp"}

	spPersonTags   = []string{"СвФЛ", "SvFL"}
	fioTags        = []string{"ФИОРус", "ФИОИП", "ФИО", "FIORus", "FIOIP", "FIO"}
	lastNameAttrs  = []string{"Фамилия", "Familia"}
	firstNameAttrs = []string{"Имя", "Imya"}
	middleNameAttrs = []string{"Отчество", "Otchestvo"}
	genderAttrs    = []string{"Пол", "Pol"}

	citizenshipTags = []string{"СвГражд", "Гражданство", "SvGrazhd", "Grazhdanstvo"}
	citizenshipKindAttrs = []string{"ВидГражд", "VidGrazhd"}
	oksmAttrs       = []string{"ОКСМ", "OKSM"}
	countryNameAttrs = []string{"НаимСтран", "NaimStran"}

	spStatusTags  = []string{"СвСтатус", "SvStatus"}
	spStatusCodeAttrs = []string{"КодСтатус", "KodStatus"}
	spTermDateAttrs = []string{"ДатаПрекращ", "DataPrekraschch"}

	spAddressTags = []string{"СвАдрМЖ", "СвАдрес", "SvAdrMZh", "SvAdres"}
	municipalDistrictTags = []string{"МуниципРайон", "MunicipRayon"}
	spLocalityTags = []string{"НаселенПункт", "NaselenPunkt"}
	streetNetTags  = []string{"ЭлУлДорСети", "ElUlDorSeti"}
	buildingTags   = []string{"Здание", "Zdanie"}
	roomTags       = []string{"ПомещЗдания", "PomeshchZdania"}
	flatRoomTags   = []string{"ПомещКвартиры", "PomeshchKvartiry"}

	spHistoryTags   = []string{"СвЗапЕГРИП", "SvZapEGRIP"}
	spHistoryGRNAttrs = []string{"ГРНИП", "ГРН", "IdZap", "GRNIP", "GRN"}

	spRegTags = []string{"СвРегИП", "SvRegIP"}
)
