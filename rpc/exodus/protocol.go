// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package exodus

import (
	"github.com/bitmark-inc/exodusd/dispatch"
)

// Protocol administration
// -----------------------

// ActivationArguments - arguments for SendActivation
type ActivationArguments struct {
	From             string `json:"fromAddress"`
	FeatureId        uint16 `json:"featureId"`
	Block            uint32 `json:"block"`
	MinClientVersion uint32 `json:"minClientVersion"`
}

// DeactivationArguments - arguments for SendDeactivation
type DeactivationArguments struct {
	From      string `json:"fromAddress"`
	FeatureId uint16 `json:"featureId"`
}

// AlertArguments - arguments for SendAlert
type AlertArguments struct {
	From      string `json:"fromAddress"`
	AlertType int64  `json:"alertType"`
	Expiry    int64  `json:"expiryValue"`
	Message   string `json:"message"`
}

// SendActivation - schedule a feature activation
//
// only accepted by the network from an authorised source
func (exodus *Exodus) SendActivation(arguments *ActivationArguments, reply *Reply) error {
	return exodus.submit("SendActivation", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		return &dispatch.Activation{
			From:             from,
			FeatureId:        arguments.FeatureId,
			Block:            arguments.Block,
			MinClientVersion: arguments.MinClientVersion,
		}, nil
	}, reply)
}

// SendDeactivation - withdraw a feature, for emergency use
func (exodus *Exodus) SendDeactivation(arguments *DeactivationArguments, reply *Reply) error {
	return exodus.submit("SendDeactivation", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		return &dispatch.Deactivation{
			From:      from,
			FeatureId: arguments.FeatureId,
		}, nil
	}, reply)
}

// SendAlert - broadcast a protocol alert
func (exodus *Exodus) SendAlert(arguments *AlertArguments, reply *Reply) error {
	return exodus.submit("SendAlert", arguments, func() (dispatch.Request, error) {
		from, err := ParseAddress(exodus.ChainName, arguments.From)
		if nil != err {
			return nil, err
		}
		alertType, err := ParseAlertType(arguments.AlertType)
		if nil != err {
			return nil, err
		}
		expiry, err := ParseAlertExpiry(arguments.Expiry)
		if nil != err {
			return nil, err
		}
		return &dispatch.Alert{
			From:      from,
			AlertType: alertType,
			Expiry:    expiry,
			Message:   ParseText(arguments.Message),
		}, nil
	}, reply)
}
