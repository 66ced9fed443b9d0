// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

// flags shared by many commands
var (
	fromFlag = cli.StringFlag{
		Name:  "from, f",
		Value: "",
		Usage: "*sending `ADDRESS`",
	}
	toFlag = cli.StringFlag{
		Name:  "to, t",
		Value: "",
		Usage: "*receiving `ADDRESS`",
	}
	propertyFlag = cli.Int64Flag{
		Name:  "property, p",
		Value: 0,
		Usage: "*token property `ID`",
	}
	amountFlag = cli.StringFlag{
		Name:  "amount, a",
		Value: "",
		Usage: "*token `AMOUNT`",
	}
	redeemFlag = cli.StringFlag{
		Name:  "redeem, r",
		Value: "",
		Usage: " bare multisig redeem `ADDRESS`",
	}
	referenceAmountFlag = cli.StringFlag{
		Name:  "reference-amount",
		Value: "",
		Usage: " base coin sent to the reference output `AMOUNT`",
	}
	ecosystemFlag = cli.Int64Flag{
		Name:  "ecosystem, e",
		Value: 0,
		Usage: "*token `ECOSYSTEM` 1=main 2=test",
	}
	forSaleFlag = cli.Int64Flag{
		Name:  "for-sale",
		Value: 0,
		Usage: "*property offered `ID`",
	}
	amountForSaleFlag = cli.StringFlag{
		Name:  "amount-for-sale",
		Value: "",
		Usage: "*amount offered `AMOUNT`",
	}
	desiredFlag = cli.Int64Flag{
		Name:  "desired",
		Value: 0,
		Usage: "*property wanted `ID`",
	}
	amountDesiredFlag = cli.StringFlag{
		Name:  "amount-desired",
		Value: "",
		Usage: "*amount wanted `AMOUNT`",
	}
	sigmaFlag = cli.Int64Flag{
		Name:  "sigma",
		Value: 0,
		Usage: " shielded `STATUS` 0=soft disabled 1=soft enabled 2=hard disabled 3=hard enabled",
	}
	memoFlag = cli.StringFlag{
		Name:  "memo, m",
		Value: "",
		Usage: " free text `STRING`",
	}
)

// property metadata for the issuance commands
var metadataFlags = []cli.Flag{
	fromFlag,
	ecosystemFlag,
	cli.Int64Flag{
		Name:  "type",
		Value: 0,
		Usage: "*token `TYPE` 1=indivisible 2=divisible",
	},
	cli.Int64Flag{
		Name:  "previous-id",
		Value: 0,
		Usage: " previous property `ID`",
	},
	cli.StringFlag{
		Name:  "category",
		Value: "",
		Usage: " `STRING`",
	},
	cli.StringFlag{
		Name:  "subcategory",
		Value: "",
		Usage: " `STRING`",
	},
	cli.StringFlag{
		Name:  "name",
		Value: "",
		Usage: "*token name `STRING`",
	},
	cli.StringFlag{
		Name:  "url",
		Value: "",
		Usage: " `URL`",
	},
	cli.StringFlag{
		Name:  "data",
		Value: "",
		Usage: " description `STRING`",
	},
}

func withMetadata(flags ...cli.Flag) []cli.Flag {
	return append(append([]cli.Flag{}, metadataFlags...), flags...)
}

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "info",
			Usage:     "display exodusd status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "pending",
			Usage:     "list unconfirmed transaction effects, oldest first",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum effects to list `COUNT`",
				},
			},
			Action: runPending,
		},
		{
			Name:      "mints",
			Usage:     "list shielded mints held by the exodusd wallet",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{propertyFlag},
			Action:    runMints,
		},
		{
			Name:      "sendrawtx",
			Usage:     "broadcast an already encoded payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag,
				cli.StringFlag{
					Name:  "payload, d",
					Value: "",
					Usage: "*encoded payload `HEX`",
				},
				cli.StringFlag{
					Name:  "reference, t",
					Value: "",
					Usage: " reference `ADDRESS`",
				},
				redeemFlag,
				referenceAmountFlag,
			},
			Action: runSendRawTx,
		},
		{
			Name:      "send",
			Usage:     "send tokens of one property",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, toFlag, propertyFlag, amountFlag, redeemFlag, referenceAmountFlag},
			Action:    runSend,
		},
		{
			Name:      "sendall",
			Usage:     "send every token of an ecosystem",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, toFlag, ecosystemFlag, redeemFlag, referenceAmountFlag},
			Action:    runSendAll,
		},
		{
			Name:      "sendsto",
			Usage:     "pay all holders of a property pro rata",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag, propertyFlag, amountFlag, redeemFlag,
				cli.Int64Flag{
					Name:  "distribution",
					Value: 0,
					Usage: " holders of this property `ID` are paid [default: property]",
				},
			},
			Action: runSendSTO,
		},
		{
			Name:      "dexsell",
			Usage:     "place, update or cancel a sell offer for base coin",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag, forSaleFlag, amountForSaleFlag, amountDesiredFlag,
				cli.Int64Flag{
					Name:  "window, w",
					Value: 0,
					Usage: "*payment window in `BLOCKS`",
				},
				cli.StringFlag{
					Name:  "fee",
					Value: "",
					Usage: "*minimum accept fee `AMOUNT`",
				},
				cli.Int64Flag{
					Name:  "action",
					Value: 1,
					Usage: " `ACTION` 1=new 2=update 3=cancel",
				},
			},
			Action: runDExSell,
		},
		{
			Name:      "dexaccept",
			Usage:     "accept a sell offer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag, toFlag, propertyFlag, amountFlag,
				cli.BoolFlag{
					Name:  "override",
					Usage: " skip the fee sanity check",
				},
			},
			Action: runDExAccept,
		},
		{
			Name:      "trade",
			Usage:     "place an offer on the token exchange",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, forSaleFlag, amountForSaleFlag, desiredFlag, amountDesiredFlag},
			Action:    runTrade("SendTrade"),
		},
		{
			Name:      "cancelprice",
			Usage:     "cancel token exchange offers at a price",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, forSaleFlag, amountForSaleFlag, desiredFlag, amountDesiredFlag},
			Action:    runTrade("SendCancelTradesByPrice"),
		},
		{
			Name:      "cancelpair",
			Usage:     "cancel token exchange offers for a pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, forSaleFlag, desiredFlag},
			Action:    runCancelPair,
		},
		{
			Name:      "cancelall",
			Usage:     "cancel all token exchange offers in an ecosystem",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, ecosystemFlag},
			Action:    runCancelAll,
		},
		{
			Name:      "crowdsale",
			Usage:     "issue tokens through a crowdsale",
			ArgsUsage: "\n   (* = required)",
			Flags: withMetadata(
				desiredFlag,
				cli.StringFlag{
					Name:  "tokens-per-unit",
					Value: "",
					Usage: "*tokens issued per unit invested `AMOUNT`",
				},
				cli.Int64Flag{
					Name:  "deadline",
					Value: 0,
					Usage: "*closing `TIMESTAMP`",
				},
				cli.Int64Flag{
					Name:  "early-bonus",
					Value: 0,
					Usage: " weekly early bird bonus `PERCENT`",
				},
				cli.Int64Flag{
					Name:  "issuer-percentage",
					Value: 0,
					Usage: " issuer bonus `PERCENT`",
				},
			),
			Action: runCrowdsale,
		},
		{
			Name:      "fixed",
			Usage:     "issue a fixed number of tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: withMetadata(
				amountFlag,
				sigmaFlag,
			),
			Action: runFixed,
		},
		{
			Name:      "managed",
			Usage:     "issue a managed property",
			ArgsUsage: "\n   (* = required)",
			Flags: withMetadata(
				sigmaFlag,
			),
			Action: runManaged,
		},
		{
			Name:      "grant",
			Usage:     "grant new tokens of a managed property",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag,
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: " receiving `ADDRESS` [default: from]",
				},
				propertyFlag, amountFlag, memoFlag,
			},
			Action: runGrant,
		},
		{
			Name:      "revoke",
			Usage:     "revoke tokens of a managed property",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, propertyFlag, amountFlag, memoFlag},
			Action:    runRevoke,
		},
		{
			Name:      "closecrowdsale",
			Usage:     "close an active crowdsale early",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, propertyFlag},
			Action:    runProperty("SendCloseCrowdsale"),
		},
		{
			Name:      "changeissuer",
			Usage:     "transfer administration of a property",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, toFlag, propertyFlag},
			Action:    runChangeIssuer,
		},
		{
			Name:      "enablefreezing",
			Usage:     "allow the issuer to freeze balances",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, propertyFlag},
			Action:    runProperty("SendEnableFreezing"),
		},
		{
			Name:      "disablefreezing",
			Usage:     "stop freezing and release all frozen balances",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, propertyFlag},
			Action:    runProperty("SendDisableFreezing"),
		},
		{
			Name:      "freeze",
			Usage:     "freeze the balance of an address",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, toFlag, propertyFlag, amountFlag},
			Action:    runFreeze("SendFreeze"),
		},
		{
			Name:      "unfreeze",
			Usage:     "release a frozen balance",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{fromFlag, toFlag, propertyFlag, amountFlag},
			Action:    runFreeze("SendUnfreeze"),
		},
		{
			Name:      "activation",
			Usage:     "schedule a protocol feature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag,
				cli.UintFlag{
					Name:  "feature",
					Value: 0,
					Usage: "*feature `ID`",
				},
				cli.UintFlag{
					Name:  "block",
					Value: 0,
					Usage: "*activation `HEIGHT`",
				},
				cli.UintFlag{
					Name:  "min-client-version",
					Value: 0,
					Usage: "*minimum client `VERSION`",
				},
			},
			Action: runActivation,
		},
		{
			Name:      "deactivation",
			Usage:     "withdraw a protocol feature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag,
				cli.UintFlag{
					Name:  "feature",
					Value: 0,
					Usage: "*feature `ID`",
				},
			},
			Action: runDeactivation,
		},
		{
			Name:      "alert",
			Usage:     "broadcast a network alert",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag,
				cli.Int64Flag{
					Name:  "type",
					Value: 0,
					Usage: "*alert `TYPE`",
				},
				cli.Int64Flag{
					Name:  "expiry",
					Value: 0,
					Usage: "*expiry `VALUE`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*alert `TEXT`",
				},
			},
			Action: runAlert,
		},
		{
			Name:      "denomination",
			Usage:     "add a shielded denomination to a property",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag, propertyFlag,
				cli.StringFlag{
					Name:  "value",
					Value: "",
					Usage: "*denomination `AMOUNT`",
				},
			},
			Action: runCreateDenomination,
		},
		{
			Name:      "mint",
			Usage:     "convert tokens to shielded mints",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag, propertyFlag,
				cli.StringFlag{
					Name:  "denominations, d",
					Value: "",
					Usage: `*JSON object of denomination: count '{"0": 2, "1": 1}'`,
				},
				cli.IntFlag{
					Name:  "confirmations",
					Value: 0,
					Usage: " denomination `CONFIRMATIONS` required [default: server setting]",
				},
			},
			Action: runMint,
		},
		{
			Name:      "spend",
			Usage:     "spend one shielded mint to an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				toFlag, propertyFlag,
				cli.Int64Flag{
					Name:  "denomination, d",
					Value: 0,
					Usage: "*denomination `INDEX`",
				},
				referenceAmountFlag,
			},
			Action: runSpend,
		},
		{
			Name:      "version",
			Usage:     "display exodus-cli version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
