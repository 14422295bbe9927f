package flex

// ============================================================
// Schema Registry catalogue
// ============================================================
//
// Record descriptors for the Flex report sections the engine decodes.
// The catalogue is data, not logic: the engine never special-cases a
// record type, so extending coverage means adding a descriptor here.
// Field lists follow the broker's current Activity Flex schema; fields
// the broker later adds are handled by tolerance mode until the
// catalogue catches up.

// Descriptor field shorthands. A field is declared Optional when the
// broker emits attr="" for it on some report configurations; String,
// Sequence, and Enum kinds treat empty input as absent unconditionally
// and are never marked Optional.
func fStr(name string) FieldDescriptor  { return FieldDescriptor{Name: name, Kind: KindString} }
func fBool(name string) FieldDescriptor { return FieldDescriptor{Name: name, Kind: KindBool} }
func fDec(name string) FieldDescriptor  { return FieldDescriptor{Name: name, Kind: KindDecimal} }
func fDate(name string) FieldDescriptor { return FieldDescriptor{Name: name, Kind: KindDate} }
func fSeq(name string) FieldDescriptor  { return FieldDescriptor{Name: name, Kind: KindSequence} }

func fDateTime(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Kind: KindDateTime}
}

func fEnum(name string, e *Enum) FieldDescriptor {
	return FieldDescriptor{Name: name, Kind: KindEnum, Enum: e}
}

func fOptBool(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Kind: KindBool, Optional: true}
}

func fOptDec(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Kind: KindDecimal, Optional: true}
}

func fOptDate(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Kind: KindDate, Optional: true}
}

func fOptDateTime(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Kind: KindDateTime, Optional: true}
}

// decTriple declares the base/Long/Short decimal triples the equity
// summary is built from.
func decTriple(base string) []FieldDescriptor {
	return []FieldDescriptor{fOptDec(base), fOptDec(base + "Long"), fOptDec(base + "Short")}
}

func concat(groups ...[]FieldDescriptor) []FieldDescriptor {
	var out []FieldDescriptor
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// instrumentFields are the security-identification attributes shared by
// most transactional record types.
func instrumentFields() []FieldDescriptor {
	return []FieldDescriptor{
		fEnum("assetCategory", AssetClass),
		fStr("subCategory"),
		fStr("symbol"),
		fStr("description"),
		fStr("conid"),
		fStr("securityID"),
		fStr("securityIDType"),
		fStr("cusip"),
		fStr("isin"),
		fStr("figi"),
		fStr("listingExchange"),
		fStr("underlyingConid"),
		fStr("underlyingSymbol"),
		fStr("underlyingSecurityID"),
		fStr("underlyingListingExchange"),
		fStr("issuer"),
		fStr("issuerCountryCode"),
	}
}

// accountFields are the account/report header attributes shared by every
// statement-section record.
func accountFields() []FieldDescriptor {
	return []FieldDescriptor{
		fStr("accountId"),
		fStr("acctAlias"),
		fStr("model"),
		fStr("currency"),
	}
}

// DefaultRegistry is the engine's schema registry, loaded once at
// package init and immutable afterwards.
var DefaultRegistry = mustRegistry(
	&RecordDescriptor{
		Name: "FlexQueryResponse",
		Fields: []FieldDescriptor{
			fStr("queryName"),
			fStr("type"),
		},
		Sections: []string{"FlexStatements"},
	},

	&RecordDescriptor{
		Name: "FlexStatement",
		Fields: []FieldDescriptor{
			fStr("accountId"),
			fDate("fromDate"),
			fDate("toDate"),
			fStr("period"),
			fDateTime("whenGenerated"),
		},
		Sections: []string{
			"AccountInformation",
			"EquitySummaryInBase",
			"StmtFunds",
			"OpenPositions",
			"FxPositions",
			"Trades",
			"CashTransactions",
			"ConversionRates",
			"SecuritiesInfo",
			"Transfers",
			"CorporateActions",
			"ChangeInDividendAccruals",
			"OpenDividendAccruals",
			"InterestAccruals",
		},
	},

	&RecordDescriptor{
		Name: "AccountInformation",
		Fields: concat(accountFields(), []FieldDescriptor{
			fStr("name"),
			fStr("accountType"),
			fStr("customerType"),
			fSeq("accountCapabilities"),
			fSeq("tradingPermissions"),
			fStr("registeredRepName"),
			fStr("registeredRepPhone"),
			fOptDate("dateOpened"),
			fOptDate("dateFunded"),
			fOptDate("dateClosed"),
			fStr("street"),
			fStr("street2"),
			fStr("city"),
			fStr("state"),
			fStr("country"),
			fStr("postalCode"),
			fStr("streetResidentialAddress"),
			fStr("street2ResidentialAddress"),
			fStr("cityResidentialAddress"),
			fStr("stateResidentialAddress"),
			fStr("countryResidentialAddress"),
			fStr("postalCodeResidentialAddress"),
			fStr("masterName"),
			fStr("ibEntity"),
			fStr("primaryEmail"),
		}),
	},

	&RecordDescriptor{
		Name: "Trade",
		Fields: concat(accountFields(), []FieldDescriptor{fDec("fxRateToBase")}, instrumentFields(), []FieldDescriptor{
			fStr("tradeID"),
			fDec("multiplier"),
			fStr("relatedTradeID"),
			fOptDec("strike"),
			fDate("reportDate"),
			fOptDate("expiry"),
			fDateTime("dateTime"),
			fEnum("putCall", PutCall),
			fDate("tradeDate"),
			fOptDec("principalAdjustFactor"),
			fOptDate("settleDateTarget"),
			fEnum("transactionType", TradeType),
			fStr("exchange"),
			fDec("quantity"),
			fDec("tradePrice"),
			fDec("tradeMoney"),
			fDec("proceeds"),
			fDec("taxes"),
			fDec("ibCommission"),
			fStr("ibCommissionCurrency"),
			fDec("netCash"),
			fDec("closePrice"),
			fEnum("openCloseIndicator", OpenClose),
			fSeq("notes"),
			fDec("cost"),
			fDec("fifoPnlRealized"),
			fDec("mtmPnl"),
			fDec("origTradePrice"),
			fOptDate("origTradeDate"),
			fStr("origTradeID"),
			fStr("origOrderID"),
			fStr("origTransactionID"),
			fEnum("buySell", BuySell),
			fStr("clearingFirmID"),
			fStr("ibOrderID"),
			fStr("transactionID"),
			fStr("ibExecID"),
			fStr("relatedTransactionID"),
			fStr("rtn"),
			fStr("brokerageOrderID"),
			fStr("orderReference"),
			fStr("volatilityOrderLink"),
			fStr("exchOrderId"),
			fStr("extExecID"),
			fOptDateTime("orderTime"),
			fOptDateTime("openDateTime"),
			fOptDateTime("holdingPeriodDateTime"),
			fOptDateTime("whenRealized"),
			fOptDateTime("whenReopened"),
			fStr("levelOfDetail"),
			fDec("changeInPrice"),
			fDec("changeInQuantity"),
			fEnum("orderType", OrderType),
			fStr("traderID"),
			fBool("isAPIOrder"),
			fDec("accruedInt"),
			fOptBool("initialInvestment"),
			fStr("positionActionID"),
			fStr("serialNumber"),
			fStr("deliveryType"),
			fStr("commodityType"),
			fOptDec("fineness"),
			fOptDec("weight"),
		}),
	},

	&RecordDescriptor{
		Name: "CashTransaction",
		Fields: concat(accountFields(), []FieldDescriptor{fDec("fxRateToBase")}, instrumentFields(), []FieldDescriptor{
			fDateTime("dateTime"),
			fOptDate("settleDate"),
			fDec("amount"),
			fEnum("type", CashAction),
			fStr("tradeID"),
			fSeq("code"),
			fStr("transactionID"),
			fDate("reportDate"),
			fStr("clientReference"),
			fStr("actionID"),
			fStr("levelOfDetail"),
			fStr("serialNumber"),
			fStr("deliveryType"),
		}),
	},

	&RecordDescriptor{
		Name: "OpenPosition",
		Fields: concat(accountFields(), []FieldDescriptor{fDec("fxRateToBase")}, instrumentFields(), []FieldDescriptor{
			fDec("multiplier"),
			fDate("reportDate"),
			fDec("position"),
			fDec("markPrice"),
			fDec("positionValue"),
			fDec("openPrice"),
			fDec("costBasisPrice"),
			fDec("costBasisMoney"),
			fOptDec("percentOfNAV"),
			fDec("fifoPnlUnrealized"),
			fEnum("side", LongShort),
			fStr("levelOfDetail"),
			fOptDateTime("openDateTime"),
			fOptDateTime("holdingPeriodDateTime"),
			fOptDate("vestingDate"),
			fSeq("code"),
			fStr("originatingOrderID"),
			fStr("originatingTransactionID"),
			fOptDec("accruedInt"),
		}),
	},

	&RecordDescriptor{
		Name: "FxLot",
		Fields: []FieldDescriptor{
			fStr("accountId"),
			fStr("acctAlias"),
			fStr("model"),
			fEnum("assetCategory", AssetClass),
			fDate("reportDate"),
			fStr("functionalCurrency"),
			fStr("fxCurrency"),
			fDec("quantity"),
			fDec("costPrice"),
			fDec("costBasis"),
			fDec("closePrice"),
			fDec("value"),
			fDec("unrealizedPL"),
			fSeq("code"),
			fStr("lotDescription"),
			fOptDateTime("lotOpenDateTime"),
			fStr("levelOfDetail"),
		},
	},

	&RecordDescriptor{
		Name: "EquitySummaryByReportDateInBase",
		Fields: concat(
			accountFields(),
			[]FieldDescriptor{fDate("reportDate")},
			decTriple("cash"),
			decTriple("brokerCashComponent"),
			decTriple("fdicInsuredBankSweepAccountCashComponent"),
			decTriple("insuredBankDepositRedemptionCashComponent"),
			decTriple("slbCashCollateral"),
			decTriple("stock"),
			decTriple("ipoSubscription"),
			decTriple("slbDirectSecuritiesBorrowed"),
			decTriple("slbDirectSecuritiesLent"),
			decTriple("options"),
			decTriple("bonds"),
			decTriple("commodities"),
			decTriple("notes"),
			decTriple("funds"),
			decTriple("dividendAccruals"),
			decTriple("liteSurchargeAccruals"),
			decTriple("cgtWithholdingAccruals"),
			decTriple("interestAccruals"),
			decTriple("incentiveCouponAccruals"),
			decTriple("brokerInterestAccrualsComponent"),
			decTriple("fdicInsuredAccountInterestAccrualsComponent"),
			decTriple("bondInterestAccrualsComponent"),
			decTriple("brokerFeesAccrualsComponent"),
			decTriple("eventContractInterestAccruals"),
			decTriple("marginFinancingChargeAccruals"),
			decTriple("softDollars"),
			decTriple("forexCfdUnrealizedPl"),
			decTriple("cfdUnrealizedPl"),
			decTriple("physDel"),
			decTriple("crypto"),
			decTriple("total"),
		),
	},

	&RecordDescriptor{
		Name: "ConversionRate",
		Fields: []FieldDescriptor{
			fDate("reportDate"),
			fStr("fromCurrency"),
			fStr("toCurrency"),
			fDec("rate"),
		},
	},

	&RecordDescriptor{
		Name: "SecurityInfo",
		Fields: concat(instrumentFields(), []FieldDescriptor{
			fDec("multiplier"),
			fOptDec("strike"),
			fOptDate("expiry"),
			fEnum("putCall", PutCall),
			fStr("maturity"),
			fOptDate("issueDate"),
			fStr("underlyingCategory"),
			fSeq("code"),
			fOptDec("fineness"),
			fOptDec("weight"),
			fStr("serialNumber"),
			fStr("deliveryType"),
			fStr("commodityType"),
		}),
	},

	&RecordDescriptor{
		Name: "Transfer",
		Fields: concat(accountFields(), []FieldDescriptor{fDec("fxRateToBase")}, instrumentFields(), []FieldDescriptor{
			fOptDate("date"),
			fOptDateTime("dateTime"),
			fEnum("type", TransferType),
			fEnum("direction", InOut),
			fStr("company"),
			fStr("account"),
			fStr("accountName"),
			fDec("quantity"),
			fOptDec("transferPrice"),
			fOptDec("positionAmount"),
			fOptDec("positionAmountInBase"),
			fOptDec("pnlAmount"),
			fOptDec("pnlAmountInBase"),
			fOptDec("fxPnl"),
			fOptDec("cashTransfer"),
			fSeq("code"),
			fStr("clientReference"),
			fStr("transactionID"),
			fEnum("deliveredReceived", DeliveredReceived),
			fDate("reportDate"),
			fStr("levelOfDetail"),
		}),
	},

	&RecordDescriptor{
		Name: "CorporateAction",
		Fields: concat(accountFields(), []FieldDescriptor{fDec("fxRateToBase")}, instrumentFields(), []FieldDescriptor{
			fDateTime("dateTime"),
			fDec("amount"),
			fDec("proceeds"),
			fDec("value"),
			fDec("quantity"),
			fDec("fifoPnlRealized"),
			fDec("mtmPnl"),
			fSeq("code"),
			fDate("reportDate"),
			fStr("actionID"),
			fStr("actionDescription"),
			fStr("levelOfDetail"),
			fStr("transactionID"),
		}),
	},

	&RecordDescriptor{
		Name: "ChangeInDividendAccrual",
		Fields: concat(accountFields(), []FieldDescriptor{fDec("fxRateToBase")}, instrumentFields(), []FieldDescriptor{
			fOptDate("date"),
			fOptDate("exDate"),
			fOptDate("payDate"),
			fDec("quantity"),
			fDec("tax"),
			fDec("fee"),
			fDec("grossRate"),
			fDec("grossAmount"),
			fDec("netAmount"),
			fSeq("code"),
			fStr("fromAcct"),
			fStr("toAcct"),
			fDate("reportDate"),
			fStr("levelOfDetail"),
		}),
	},

	&RecordDescriptor{
		Name: "OpenDividendAccrual",
		Fields: concat(accountFields(), []FieldDescriptor{fDec("fxRateToBase")}, instrumentFields(), []FieldDescriptor{
			fOptDate("exDate"),
			fOptDate("payDate"),
			fDec("quantity"),
			fDec("tax"),
			fDec("fee"),
			fDec("grossRate"),
			fDec("grossAmount"),
			fDec("netAmount"),
			fSeq("code"),
			fDate("reportDate"),
			fStr("levelOfDetail"),
		}),
	},

	&RecordDescriptor{
		Name: "StatementOfFundsLine",
		Fields: concat(accountFields(), []FieldDescriptor{fDec("fxRateToBase")}, instrumentFields(), []FieldDescriptor{
			fDate("reportDate"),
			fOptDate("date"),
			fOptDate("settleDate"),
			fStr("activityDescription"),
			fStr("activityCode"),
			fStr("tradeID"),
			fStr("orderID"),
			fOptDec("debit"),
			fOptDec("credit"),
			fDec("amount"),
			fDec("balance"),
			fStr("buySell"),
			fOptDec("tradeQuantity"),
			fOptDec("tradePrice"),
			fOptDec("tradeGross"),
			fOptDec("tradeCommission"),
			fOptDec("tradeTax"),
			fStr("levelOfDetail"),
		}),
	},

	&RecordDescriptor{
		Name: "InterestAccrualsCurrency",
		Fields: []FieldDescriptor{
			fStr("accountId"),
			fStr("acctAlias"),
			fStr("model"),
			fStr("currency"),
			fDate("fromDate"),
			fDate("toDate"),
			fDec("startingAccrualBalance"),
			fDec("interestAccrued"),
			fDec("accrualReversal"),
			fDec("fxTranslation"),
			fDec("endingAccrualBalance"),
		},
	},
)
