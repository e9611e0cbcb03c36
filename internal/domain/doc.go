// Package domain contains the core types of the study tool: cards,
// per-card learning progress, per-theme aggregates, and the snapshot
// shape they persist as. Types here are plain data with pure methods;
// all mutation goes through the store and the streak rules.
package domain
